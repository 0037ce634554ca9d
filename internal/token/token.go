package token

import (
	"typeset/internal/source"
)

// Literal holds the parts of a literal token that the formatter re-assembles.
type Literal struct {
	Body   string // content without quotes, prefixes, hashes or suffix
	Hashes int    // number of '#' delimiters of a raw string
	Suffix string // e.g. "u8" in 1u8
}

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Lit  Literal
}

// IsLiteral reports whether the token is a numeric, character or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }
