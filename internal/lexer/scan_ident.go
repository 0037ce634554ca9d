package lexer

import (
	"typeset/internal/diag"
	"typeset/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text равен исходному срезу.
// Сырые идентификаторы (r#type) всегда дают Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	// Первый символ: ASCII fast-path или Unicode
	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(token.Invalid, start)
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			// fallback на оператор
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			lx.bumpRune()
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text)
			return tok
		}
		lx.bumpRune()
	}
	lx.eatIdentTail()

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	if len(lex) == 1 && lex[0] == 'r' && lx.cursor.Peek() == '#' && lx.identStartsAt(1) {
		lx.cursor.Bump()
		lx.eatIdentTail()
		return lx.emit(token.Ident, start)
	}

	if len(lex) == 1 && lex[0] == '_' {
		return lx.emit(token.Underscore, start)
	}

	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanCharOrLifetime разбирает 'c', '\n' и 'label.
// Правило: после кавычки одна руна и снова кавычка: символ, иначе lifetime.
func (lx *Lexer) scanCharOrLifetime() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.PeekAt(1) == '\\' {
		return lx.scanQuoted(0, '\'', token.CharLit)
	}
	_, sz := lx.peekRuneAt(1)
	if sz > 0 && lx.cursor.PeekAt(1+uint32(sz)) == '\'' {
		return lx.scanQuoted(0, '\'', token.CharLit)
	}
	if lx.identStartsAt(1) {
		lx.cursor.Bump()
		lx.eatIdentTail()
		return lx.emit(token.Lifetime, start)
	}

	// одинокая кавычка или незакрытый символ
	return lx.scanQuoted(0, '\'', token.CharLit)
}
