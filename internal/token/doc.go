// Package token defines lexical token kinds for the typeset formatter.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Whitespace and comments are real tokens: the formatter needs their spans to
//     detect line breaks and to keep comment text verbatim.
//   - Literal tokens carry their decomposed parts in Token.Lit.
package token
