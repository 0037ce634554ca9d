package lexer

import (
	"typeset/internal/diag"
	"typeset/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1.0, 1., 1e-3, 1.0e+10 и суффиксы (1u8, 2.5f32).
// Lit.Body: цифры без суффикса, Lit.Suffix: хвост-идентификатор.
// "1..2" и "1.foo()" не съедают точку.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'b':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x':
			digit = isHex
		}
		if digit != nil {
			lx.cursor.BumpN(2)
			n := 0
			for {
				b := lx.cursor.Peek()
				if b == '_' {
					lx.cursor.Bump()
					continue
				}
				if !digit(b) {
					break
				}
				lx.cursor.Bump()
				n++
			}
			body := lx.cursor.Mark()
			if n == 0 {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected digits after base prefix")
			}
			return lx.finishNumber(start, body, kind)
		}
	}

	lx.eatDecimals()

	// дробная часть
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		switch {
		case isDec(next):
			lx.cursor.Bump()
			lx.eatDecimals()
			kind = token.FloatLit
		case next == '.' || lx.identStartsAt(1):
			// '..' или вызов метода, НЕ часть числа
		default:
			// одиночная точка без дробной части допустима как float "1."
			lx.cursor.Bump()
			return lx.finishNumber(start, lx.cursor.Mark(), token.FloatLit)
		}
	}

	// экспонента: только если дальше цифры, иначе e начинает суффикс
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		n := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDec(lx.cursor.PeekAt(n)) {
			lx.cursor.BumpN(n)
			lx.eatDecimals()
			kind = token.FloatLit
		}
	}

	return lx.finishNumber(start, lx.cursor.Mark(), kind)
}

func (lx *Lexer) eatDecimals() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// finishNumber съедает суффикс и собирает токен.
func (lx *Lexer) finishNumber(start, bodyEnd Mark, kind token.Kind) token.Token {
	suffixStart := lx.cursor.Mark()
	if lx.identStartsAt(0) {
		lx.eatIdentTail()
	}
	tok := lx.emit(kind, start)
	content := lx.file.Content
	tok.Lit = token.Literal{
		Body:   string(content[start:bodyEnd]),
		Suffix: string(content[suffixStart:lx.cursor.Off]),
	}
	if kind == token.IntLit && len(tok.Lit.Suffix) > 0 && tok.Lit.Suffix[0] == 'f' && !hasBasePrefix(tok.Lit.Body) {
		// 1f32
		tok.Kind = token.FloatLit
	}
	return tok
}

func hasBasePrefix(body string) bool {
	return len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'o' || body[1] == 'b')
}
