package format

import (
	"errors"
	"strings"

	"typeset/internal/token"
)

// ErrMissingEOF is returned by Classify when the token stream has no EOF token.
var ErrMissingEOF = errors.New("format: token stream does not end with EOF")

// Classify maps lexer tokens to Words. Classification stops at the first EOF token.
func Classify(tokens []token.Token) ([]Word, error) {
	words := make([]Word, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			return append(words, marker(EOF)), nil
		}
		if w, ok := classifyToken(tok); ok {
			words = append(words, w)
		}
	}
	return nil, ErrMissingEOF
}

// classifyToken returns false for Words that are dropped (horizontal whitespace).
func classifyToken(tok token.Token) (Word, bool) {
	switch tok.Kind {
	case token.Whitespace:
		switch strings.Count(tok.Text, "\n") {
		case 0:
			return Word{}, false
		case 1:
			return marker(LineBreak), true
		default:
			return marker(LineBreakDouble), true
		}

	case token.LineComment, token.BlockComment, token.DocComment:
		return comment(tok.Text), true

	case token.KwAs:
		return binary(tok.Text), true

	case token.Ident, token.Lifetime, token.Underscore, token.Invalid:
		return other(tok.Text), true

	case token.LBrace:
		return marker(OpenBrace), true
	case token.RBrace:
		return marker(CloseBrace), true
	case token.LBracket:
		return marker(OpenBracket), true
	case token.RBracket:
		return marker(CloseBracket), true
	case token.LParen:
		return marker(OpenParen), true
	case token.RParen:
		return marker(CloseParen), true
	case token.Comma:
		return marker(Comma), true
	case token.Colon:
		return marker(Colon), true
	case token.Semicolon:
		return marker(Semicolon), true

	case token.Assign, token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Caret, token.Pipe,
		token.Shl, token.Shr,
		token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq, token.PercentEq,
		token.CaretEq, token.AmpEq, token.PipeEq, token.ShlEq, token.ShrEq,
		token.Arrow, token.FatArrow:
		return binary(tok.Text), true

	case token.Bang, token.Tilde, token.Amp, token.At, token.Pound, token.Dollar, token.Question:
		return prefix(tok.Text), true

	case token.Dot, token.DotDot, token.DotDotDot, token.DotDotEq, token.ColonColon:
		return slim(tok.Text), true
	}

	if tok.Kind.IsLiteral() {
		return other(literalText(tok)), true
	}
	// keywords
	return other(tok.Text), true
}

// literalText renders a literal in its canonical form from its parts.
func literalText(tok token.Token) string {
	lit := tok.Lit
	hashes := strings.Repeat("#", lit.Hashes)
	switch tok.Kind {
	case token.CharLit:
		return "'" + lit.Body + "'" + lit.Suffix
	case token.ByteLit:
		return "b'" + lit.Body + "'" + lit.Suffix
	case token.StringLit:
		return `"` + lit.Body + `"` + lit.Suffix
	case token.ByteStringLit:
		return `b"` + lit.Body + `"` + lit.Suffix
	case token.RawStringLit:
		return "r" + hashes + `"` + lit.Body + `"` + hashes + lit.Suffix
	case token.RawByteStringLit:
		return "br" + hashes + `"` + lit.Body + `"` + hashes + lit.Suffix
	case token.IntLit, token.FloatLit:
		return lit.Body + lit.Suffix
	default:
		return tok.Text
	}
}
