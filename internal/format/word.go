package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WordKind is the formatting-level category of a Word.
type WordKind uint8

const (
	// Nope is a no-op marker; it renders as nothing.
	Nope WordKind = iota
	// Binary is an infix operator spaced on both sides (=, +, &&, as, =>).
	Binary
	// Prefix is a unary operator glued to its operand (&, !, #, ?).
	Prefix
	// Slim is an infix symbol without surrounding spaces (., ::, ..).
	Slim
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	OpenParen
	CloseParen
	Comma
	Colon
	Semicolon
	// Other is free text: identifiers, keywords, literals, lifetimes.
	Other
	// Comment carries the verbatim comment text including delimiters.
	Comment
	// Whitespace is a run of Width spaces.
	Whitespace
	LineBreak
	LineBreakDouble
	// IndentPlus is a line break that increases the indent first.
	IndentPlus
	// IndentMinus is a line break that decreases the indent first.
	IndentMinus
	EOF
)

var wordKindNames = [...]string{
	Nope:            "Nope",
	Binary:          "Binary",
	Prefix:          "Prefix",
	Slim:            "Slim",
	OpenBrace:       "OpenBrace",
	CloseBrace:      "CloseBrace",
	OpenBracket:     "OpenBracket",
	CloseBracket:    "CloseBracket",
	OpenParen:       "OpenParen",
	CloseParen:      "CloseParen",
	Comma:           "Comma",
	Colon:           "Colon",
	Semicolon:       "Semicolon",
	Other:           "Other",
	Comment:         "Comment",
	Whitespace:      "Whitespace",
	LineBreak:       "LineBreak",
	LineBreakDouble: "LineBreakDouble",
	IndentPlus:      "IndentPlus",
	IndentMinus:     "IndentMinus",
	EOF:             "EOF",
}

func (k WordKind) String() string {
	if int(k) < len(wordKindNames) {
		return wordKindNames[k]
	}
	return fmt.Sprintf("WordKind(%d)", k)
}

// Word is the unit every pass operates on.
// Text is set for Binary, Prefix, Slim, Other and Comment; Width only for Whitespace.
type Word struct {
	Kind  WordKind
	Text  string
	Width int
}

func binary(s string) Word   { return Word{Kind: Binary, Text: s} }
func prefix(s string) Word   { return Word{Kind: Prefix, Text: s} }
func slim(s string) Word     { return Word{Kind: Slim, Text: s} }
func other(s string) Word    { return Word{Kind: Other, Text: s} }
func comment(s string) Word  { return Word{Kind: Comment, Text: s} }
func space(n int) Word       { return Word{Kind: Whitespace, Width: n} }
func marker(k WordKind) Word { return Word{Kind: k} }

// is reports whether w has kind k and, for text-carrying kinds, the given text.
func (w Word) is(k WordKind, text string) bool {
	return w.Kind == k && w.Text == text
}

// IsLineBreak reports whether w starts a new line when rendered.
func (w Word) IsLineBreak() bool {
	switch w.Kind {
	case LineBreak, LineBreakDouble, IndentPlus, IndentMinus:
		return true
	}
	return false
}

// isSourceBreak reports whether w is a break carried over from the source.
func (w Word) isSourceBreak() bool {
	return w.Kind == LineBreak || w.Kind == LineBreakDouble
}

func (w Word) isLineComment() bool {
	return w.Kind == Comment && strings.HasPrefix(w.Text, "//")
}

// Render returns the canonical text of a Word that does not start a line.
func (w Word) Render() string {
	switch w.Kind {
	case Binary, Prefix, Slim, Other, Comment:
		return w.Text
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case Comma:
		return ","
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Whitespace:
		return strings.Repeat(" ", max(w.Width, 0))
	case Nope, LineBreak, LineBreakDouble, IndentPlus, IndentMinus, EOF:
		return ""
	default:
		return ""
	}
}

// DisplayWidth is the number of terminal columns the rendered Word occupies.
func (w Word) DisplayWidth() int {
	if w.Kind == Whitespace {
		return max(w.Width, 0)
	}
	return runewidth.StringWidth(w.Render())
}

// String is the debug form used by dumps and test failures, e.g. Binary("=") or Whitespace(4).
func (w Word) String() string {
	switch w.Kind {
	case Binary, Prefix, Slim, Other, Comment:
		return fmt.Sprintf("%s(%q)", w.Kind, w.Text)
	case Whitespace:
		return fmt.Sprintf("%s(%d)", w.Kind, w.Width)
	default:
		return w.Kind.String()
	}
}
