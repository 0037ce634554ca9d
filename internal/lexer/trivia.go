package lexer

import (
	"typeset/internal/diag"
	"typeset/internal/token"
)

// scanWhitespace коалесцирует пробелы, табы и переводы строк в один Whitespace.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanComment разбирает
//   - //... до \n (без самого \n) -> LineComment, /// и //! -> DocComment
//   - /* ... */ с вложенностью -> BlockComment, /** и /*! -> DocComment
//
// Незакрытый блочный комментарий репортится и обрезается на EOF.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		kind := token.LineComment
		switch b := lx.cursor.Peek(); {
		case b == '!':
			kind = token.DocComment
		case b == '/' && lx.cursor.PeekAt(1) != '/':
			kind = token.DocComment
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.emit(kind, start)
	}

	lx.cursor.Bump() // '*'
	kind := token.BlockComment
	switch b := lx.cursor.Peek(); {
	case b == '!':
		kind = token.DocComment
	case b == '*' && lx.cursor.PeekAt(1) != '*' && lx.cursor.PeekAt(1) != '/':
		kind = token.DocComment
	}

	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch {
		case lx.cursor.EatPair('/', '*'):
			depth++
		case lx.cursor.EatPair('*', '/'):
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(kind, start)
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, tok.Span, "unterminated block comment")
	}
	return tok
}
