package lexer

import (
	"typeset/internal/diag"
	"typeset/internal/token"
)

// scanOperatorOrPunct берёт самую длинную известную лексему: "..=" раньше "..", ".." раньше ".".
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.cursor.Rest()
	for n := min(token.MaxOperatorLen, len(rest)); n > 0; n-- {
		if kind, ok := token.LookupOperator(string(rest[:n])); ok {
			lx.cursor.BumpN(uint32(n)) // #nosec G115 -- n <= MaxOperatorLen
			return lx.emit(kind, start)
		}
	}

	lx.cursor.Bump()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text)
	return tok
}
