package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"typeset/internal/lexer"
	"typeset/internal/source"
	"typeset/internal/token"
)

func lexString(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(src)))
	return lexer.New(file, lexer.Options{}).All()
}

func classifyString(t *testing.T, src string) []Word {
	t.Helper()
	words, err := Classify(lexString(t, src))
	if err != nil {
		t.Fatalf("Classify(%q): %v", src, err)
	}
	return words
}

func TestClassify(t *testing.T) {
	eof := marker(EOF)
	tests := []struct {
		name string
		src  string
		want []Word
	}{
		{"cast is binary", "x as u8", []Word{other("x"), binary("as"), other("u8"), eof}},
		{"single newline", "a\n  b", []Word{other("a"), marker(LineBreak), other("b"), eof}},
		{"blank lines collapse", "a\n\n\n\nb", []Word{other("a"), marker(LineBreakDouble), other("b"), eof}},
		{"prefix operators", "&x?", []Word{prefix("&"), other("x"), prefix("?"), eof}},
		{"slim operators", "a.b::c..d", []Word{other("a"), slim("."), other("b"), slim("::"), other("c"), slim(".."), other("d"), eof}},
		{"arrows are binary", "-> =>", []Word{binary("->"), binary("=>"), eof}},
		{"lifetime and wildcard", "'a _", []Word{other("'a"), other("_"), eof}},
		{"comments verbatim", "// hi\n/* b */", []Word{comment("// hi"), marker(LineBreak), comment("/* b */"), eof}},
		{"punctuation", "{[(,:;)]}", []Word{
			marker(OpenBrace), marker(OpenBracket), marker(OpenParen), marker(Comma), marker(Colon),
			marker(Semicolon), marker(CloseParen), marker(CloseBracket), marker(CloseBrace), eof,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, classifyString(t, tt.src)); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestClassifyLiterals(t *testing.T) {
	literals := []string{
		`'c'`, `b'c'`, `"s"`, `b"s"`, `r"s"`, `r##"a"#b"##`, `br#"x"#`,
		`1u8`, `2.5f32`, `0xff`, `"x"suffix`, `'\n'`,
	}
	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			want := []Word{other(lit), marker(EOF)}
			if diff := cmp.Diff(want, classifyString(t, lit)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyStopsAtEOF(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Ident, Text: "a"},
		{Kind: token.EOF},
		{Kind: token.Ident, Text: "b"},
	}
	words, err := Classify(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Word{other("a"), marker(EOF)}, words); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyMissingEOF(t *testing.T) {
	_, err := Classify([]token.Token{{Kind: token.Ident, Text: "a"}})
	if !errors.Is(err, ErrMissingEOF) {
		t.Fatalf("expected ErrMissingEOF, got %v", err)
	}
}
