package lexer

import (
	"typeset/internal/diag"
	"typeset/internal/token"
)

// scanQuoted сканирует "...", '...', b"..." и b'...'.
// prefixLen: длина префикса до открывающей кавычки (0 или 1 для b).
// Escape-последовательности не валидируются: форматтер переносит их как есть.
// Строки могут занимать несколько строк.
func (lx *Lexer) scanQuoted(prefixLen uint32, quote byte, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(prefixLen + 1)
	bodyStart := lx.cursor.Off

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			bodyEnd := lx.cursor.Off
			lx.cursor.Bump()
			return lx.finishQuoted(start, bodyStart, bodyEnd, 0, kind)
		}
		if b == '\\' {
			// съесть '\' и следующую руну
			lx.cursor.Bump()
			lx.bumpRune()
			continue
		}
		if b == '\n' && quote == '\'' {
			break
		}
		lx.bumpRune()
	}

	tok := lx.emit(token.Invalid, start)
	if quote == '\'' {
		lx.errLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
	} else {
		lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	}
	return tok
}

// isRawStringStart проверяет, что со смещения n идут #* и ".
func (lx *Lexer) isRawStringStart(n uint32) bool {
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	return lx.cursor.PeekAt(n) == '"'
}

// scanRawString сканирует r#"..."# и br#"..."#; тело заканчивается на " и том же числе '#'.
func (lx *Lexer) scanRawString(prefixLen uint32, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(prefixLen)

	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexBadRawString, tok.Span, "expected '\"' in raw string")
		return tok
	}
	bodyStart := lx.cursor.Off

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() != '"' {
			lx.cursor.Bump()
			continue
		}
		bodyEnd := lx.cursor.Off
		lx.cursor.Bump()
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			return lx.finishQuoted(start, bodyStart, bodyEnd, hashes, kind)
		}
	}

	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated raw string literal")
	return tok
}

// finishQuoted съедает суффикс после закрывающей кавычки и заполняет Lit.
func (lx *Lexer) finishQuoted(start Mark, bodyStart, bodyEnd uint32, hashes int, kind token.Kind) token.Token {
	suffixStart := lx.cursor.Off
	if lx.identStartsAt(0) {
		lx.eatIdentTail()
	}
	tok := lx.emit(kind, start)
	content := lx.file.Content
	tok.Lit = token.Literal{
		Body:   string(content[bodyStart:bodyEnd]),
		Hashes: hashes,
		Suffix: string(content[suffixStart:lx.cursor.Off]),
	}
	return tok
}
