package driver

import (
	"errors"
	"testing"

	"typeset/internal/format"
	"typeset/internal/token"
)

func TestTokenizeKeepsLexErrors(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "a.rs", "let s = \"open\n")
	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Error("expected lexer errors in bag")
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Error("token stream must end with EOF")
	}
}

func TestWordsStage(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "a.rs", messySource)
	res, err := Words(path, "layout", 10, format.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(format.Render(res.Words)); got != tidySource {
		t.Errorf("layout words render to %q", got)
	}

	if _, err := Words(path, "nope", 10, format.Options{}); !errors.Is(err, format.ErrUnknownStage) {
		t.Errorf("expected ErrUnknownStage, got %v", err)
	}

	bad := writeTestFile(t, t.TempDir(), "b.rs", "/* open")
	if _, err := Words(bad, "classify", 10, format.Options{}); !errors.Is(err, format.ErrLex) {
		t.Errorf("expected ErrLex, got %v", err)
	}
}
