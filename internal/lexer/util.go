package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = utf8.RuneSelf

// ===== Работа с рунами поверх Cursor =====

// peekRune декодирует руну в текущей позиции
func (lx *Lexer) peekRune() (r rune, size int) {
	return lx.peekRuneAt(0)
}

func (lx *Lexer) peekRuneAt(n uint32) (r rune, size int) {
	off := lx.cursor.Off + n
	if off >= lx.cursor.Limit {
		return utf8.RuneError, 0
	}
	b := lx.file.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[off:lx.cursor.Limit])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.BumpN(usz)
}

// ===== Классификаторы =====

// ASCII fast-path для идентификаторов; Unicode через isIdentStartRune/Continue.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// identStartsAt сообщает, начинается ли идентификатор со смещения n.
func (lx *Lexer) identStartsAt(n uint32) bool {
	b := lx.cursor.PeekAt(n)
	if b < utf8.RuneSelf {
		return isIdentStartByte(b)
	}
	r, _ := lx.peekRuneAt(n)
	return isIdentStartRune(r)
}

// eatIdentTail съедает продолжение идентификатора (ASCII и Unicode).
func (lx *Lexer) eatIdentTail() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}
