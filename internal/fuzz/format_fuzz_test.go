package fuzztests

import (
	"errors"
	"testing"

	"typeset/internal/format"
	"typeset/internal/source"
	"typeset/internal/testkit"
)

// FuzzFormatPreservesDelimiters formats arbitrary input and checks that no bracket was
// added or dropped. Inputs with lexical errors must be rejected with format.ErrLex.
func FuzzFormatPreservesDelimiters(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rs", input))

		for _, rewrap := range []bool{false, true} {
			out, err := format.FormatFile(file, format.Options{Rewrap: rewrap})
			if err != nil {
				if !errors.Is(err, format.ErrLex) {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err := testkit.CheckBalancedDelimiters(file.Content, out); err != nil {
				t.Fatalf("%v (rewrap=%v):\n in: %q\nout: %q", err, rewrap, file.Content, out)
			}
		}
	})
}
