// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"typeset/internal/format"
	"typeset/internal/source"
	"typeset/internal/token"
)

// CheckTokenSpans runs the span invariants of a complete token stream:
// 1) every span points at sf and lies within its content
// 2) spans are contiguous: each token starts where the previous one ended
// 3) only the final token is EOF, and it is empty and sits at the end of the file
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var pos uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d (%s) points to file %d, want %d", i, tok.Kind, sp.File, sf.ID)
		}
		if sp.Start != pos {
			return fmt.Errorf("token %d (%s) starts at %d, previous ended at %d", i, tok.Kind, sp.Start, pos)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d (%s) has bad span %v (content %d bytes)", i, tok.Kind, sp, lenContent)
		}
		last := i == len(tokens)-1
		if (tok.Kind == token.EOF) != last {
			return fmt.Errorf("token %d: EOF must be exactly the final token", i)
		}
		if !last && sp.Empty() {
			return fmt.Errorf("token %d (%s) is empty", i, tok.Kind)
		}
		pos = sp.End
	}
	if pos != lenContent {
		return fmt.Errorf("EOF at %d, content is %d bytes", pos, lenContent)
	}
	return nil
}

// CheckBalancedDelimiters reports the first bracket whose count differs between before and after.
func CheckBalancedDelimiters(before, after []byte) error {
	for _, d := range []byte("{}[]()") {
		b, a := countByte(before, d), countByte(after, d)
		if b != a {
			return fmt.Errorf("count of %q changed: %d -> %d", d, b, a)
		}
	}
	return nil
}

func countByte(s []byte, c byte) int {
	n := 0
	for _, b := range s {
		if b == c {
			n++
		}
	}
	return n
}

// CheckLayoutWords checks the shape of a Word sequence produced by format.Layout:
// it ends with a single EOF and indentation never drops below zero.
func CheckLayoutWords(words []format.Word) error {
	if len(words) == 0 || words[len(words)-1].Kind != format.EOF {
		return fmt.Errorf("word sequence must end with EOF")
	}
	depth := 0
	for i, w := range words {
		switch w.Kind {
		case format.EOF:
			if i != len(words)-1 {
				return fmt.Errorf("word %d: EOF before the end", i)
			}
		case format.IndentPlus:
			depth++
		case format.IndentMinus:
			depth--
			if depth < 0 {
				return fmt.Errorf("word %d: indentation below zero", i)
			}
		}
	}
	return nil
}
