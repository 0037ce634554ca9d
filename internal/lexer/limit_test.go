package lexer

import (
	"strings"
	"testing"

	"typeset/internal/diag"
	"typeset/internal/token"
)

func TestTokenTooLongFastForwards(t *testing.T) {
	bag := diag.NewBag(8)
	file := createFile(strings.Repeat("a", maxTokenLength+1) + " b")
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("Expected Invalid, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("Expected EOF after fast-forward, got %v", tok.Kind)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexTokenTooLong {
		t.Fatalf("Expected %s diagnostic", diag.LexTokenTooLong.ID())
	}
}
