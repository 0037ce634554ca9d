package fuzztests

import (
	"strings"
	"testing"

	"typeset/internal/diag"
	"typeset/internal/lexer"
	"typeset/internal/source"
	"typeset/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// FuzzLexerLossless: склейка текста всех токенов воспроизводит исходник.
func FuzzLexerLossless(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rs", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		tokens := lx.All()
		if err := testkit.CheckTokenSpans(tokens, file); err != nil {
			t.Fatalf("span invariants: %v", err)
		}

		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(file.Snippet(tok.Span))
		}
		if sb.String() != string(file.Content) {
			t.Fatalf("tokens do not cover the input:\n got %q\nwant %q", sb.String(), file.Content)
		}
	})
}
