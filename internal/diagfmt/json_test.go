package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"typeset/internal/diag"
	"typeset/internal/format"
	"typeset/internal/lexer"
	"typeset/internal/source"
	"typeset/internal/token"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	bag, fs := unterminatedBag(t, "src/a.rs")
	bag.Add(diag.New(diag.SevInfo, diag.LexInfo, source.Span{}, "extra").WithNote(source.Span{Start: 1, End: 2}, "n"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: PathModeBasename})
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	want := LocationJSON{File: "a.rs", StartByte: 20, EndByte: 40, StartLine: 2, StartCol: 9, EndLine: 2, EndCol: 29}
	if diff := cmp.Diff(want, out.Diagnostics[0].Location); diff != "" {
		t.Errorf("location mismatch (-want +got):\n%s", diff)
	}
	if out.Diagnostics[0].Code != "LEX1002" || out.Diagnostics[0].Severity != "ERROR" {
		t.Errorf("unexpected header %+v", out.Diagnostics[0])
	}
	if len(out.Diagnostics[1].Notes) != 1 {
		t.Errorf("notes dropped: %+v", out.Diagnostics[1])
	}

	limited := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if limited.Count != 1 || limited.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("Max or positions not honoured: %+v", limited)
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, nil, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Count != 0 || decoded.Diagnostics == nil {
		t.Errorf("expected an empty array, got %s", buf.String())
	}
}

func lexAll(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.rs", []byte(src)))
	return lexer.New(f, lexer.Options{}).All(), fs
}

func TestFormatTokens(t *testing.T) {
	tokens, fs := lexAll(t, "let n = 1u8;")

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, tokens, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "(suffix u8)") {
		t.Errorf("pretty dump lost the literal suffix:\n%s", pretty.String())
	}

	var raw bytes.Buffer
	if err := FormatTokensJSON(&raw, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(raw.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(tokens) {
		t.Fatalf("got %d tokens, want %d", len(decoded), len(tokens))
	}
	var lit *TokenOutput
	for i := range decoded {
		if decoded[i].Suffix != "" {
			lit = &decoded[i]
		}
	}
	if lit == nil || lit.Body != "1" || lit.Suffix != "u8" {
		t.Errorf("literal parts missing: %+v", decoded)
	}
}

func TestFormatWords(t *testing.T) {
	tokens, _ := lexAll(t, "fn f(){return}")
	words, err := format.Stage(tokens, "layout", format.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var pretty bytes.Buffer
	if err := FormatWordsPretty(&pretty, words); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Other", "\"return\"", "IndentPlus", "EOF"} {
		if !strings.Contains(pretty.String(), want) {
			t.Errorf("pretty words missing %q:\n%s", want, pretty.String())
		}
	}

	var raw bytes.Buffer
	if err := FormatWordsJSON(&raw, words); err != nil {
		t.Fatal(err)
	}
	var decoded []WordOutput
	if err := json.Unmarshal(raw.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(words) || decoded[len(decoded)-1].Kind != "EOF" {
		t.Errorf("unexpected JSON words: %s", raw.String())
	}
}
