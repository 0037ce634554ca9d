package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"typeset/internal/diag"
	"typeset/internal/driver"
	"typeset/internal/source"
	"typeset/internal/version"
)

func sampleResults() []driver.FormatResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.rs", []byte("let s = \"open\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: 8, End: 14}, "unterminated string literal"))

	return []driver.FormatResult{
		{Path: "a.rs", Changed: true, Formatted: []byte("a\n")},
		{Path: "b.rs", Formatted: []byte("b\n")},
		{Path: "bad.rs", Err: errors.New("bad.rs: format: source has lexical errors"), FileSet: fs, Bag: bag},
	}
}

func TestRenderFmtText(t *testing.T) {
	var out, errOut bytes.Buffer
	hasErrors, hasChanges := renderFmtText(&out, &errOut, sampleResults(), false, false, false)
	if !hasErrors || !hasChanges {
		t.Errorf("flags = %v,%v, want true,true", hasErrors, hasChanges)
	}
	if out.String() != "reformatted a.rs\n" {
		t.Errorf("stdout = %q", out.String())
	}
	for _, want := range []string{"bad.rs:1:9: ERROR LEX1002", "fmt: bad.rs: format: source has lexical errors"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}

	out.Reset()
	renderFmtText(&out, &errOut, sampleResults(), true, false, false)
	if out.String() != "a.rs\n" {
		t.Errorf("check stdout = %q", out.String())
	}

	out.Reset()
	renderFmtText(&out, &errOut, sampleResults(), true, true, false)
	if out.Len() != 0 {
		t.Errorf("quiet mode printed %q", out.String())
	}
}

func TestRenderFmtStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	if !renderFmtStdout(&out, &errOut, sampleResults(), false) {
		t.Error("expected hasErrors")
	}
	if out.String() != "a\nb\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestRenderFmtJSON(t *testing.T) {
	var out bytes.Buffer
	if err := renderFmtJSON(&out, sampleResults(), true); err != nil {
		t.Fatal(err)
	}
	var decoded []struct {
		Path        string `json:"path"`
		Changed     bool   `json:"changed"`
		Error       string `json:"error"`
		Check       bool   `json:"check"`
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, r := range decoded {
		paths = append(paths, r.Path)
	}
	if diff := cmp.Diff([]string{"a.rs", "b.rs", "bad.rs"}, paths); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
	if !decoded[0].Changed || !decoded[0].Check {
		t.Errorf("a.rs entry = %+v", decoded[0])
	}
	if len(decoded[2].Diagnostics) != 1 || decoded[2].Diagnostics[0].Code != "LEX1002" || decoded[2].Error == "" {
		t.Errorf("bad.rs entry = %+v", decoded[2])
	}
}

func TestUIModeValue(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		var m uiMode
		if err := m.Set(in); err != nil || m != want {
			t.Errorf("Set(%q) = %v, %v; want %v", in, m.String(), err, uiModeNames[want])
		}
	}
	var m uiMode
	if err := m.Set("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if !uiModeOn.shouldUseTUI(1) || uiModeOff.shouldUseTUI(10) || uiModeAuto.shouldUseTUI(1) {
		t.Error("unexpected shouldUseTUI result")
	}
}

func TestVersionReport(t *testing.T) {
	oldV, oldC, oldD := version.Version, version.GitCommit, version.BuildDate
	version.Version, version.GitCommit, version.BuildDate = "1.2.3", "abc", ""
	defer func() { version.Version, version.GitCommit, version.BuildDate = oldV, oldC, oldD }()

	var pretty bytes.Buffer
	writeVersionPretty(&pretty, version.Plain(), buildVersionReport(true, false, true, false))
	want := "typeset 1.2.3: " + versionTagline + "\ncommit:  abc\nbuilt:   unknown\n"
	if diff := cmp.Diff(want, pretty.String()); diff != "" {
		t.Errorf("pretty (-want +got):\n%s", diff)
	}

	pretty.Reset()
	writeVersionPretty(&pretty, "1.2.3", buildVersionReport(false, false, false, false))
	if !strings.Contains(pretty.String(), "--full") {
		t.Errorf("bare report must hint at flags: %q", pretty.String())
	}

	var raw bytes.Buffer
	if err := writeVersionJSON(&raw, buildVersionReport(true, false, false, true)); err != nil {
		t.Fatal(err)
	}
	var got versionReport
	if err := json.Unmarshal(raw.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	wantRep := versionReport{
		Tool:      "typeset",
		Version:   "1.2.3",
		Tagline:   versionTagline,
		GitCommit: "abc",
		Layout:    &layout{IndentWidth: 4, MaxLineLength: 100, MaxIndent: 80, Extensions: []string{".rs"}},
		Stages:    []string{"classify", "normalize", "resolve", "layout", "rewrap"},
	}
	if diff := cmp.Diff(wantRep, got); diff != "" {
		t.Errorf("json report (-want +got):\n%s", diff)
	}
}
