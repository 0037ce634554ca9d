package lexer

import (
	"typeset/internal/diag"
	"typeset/internal/source"
	"typeset/internal/token"
)

// maxTokenLength bounds a single token; longer input is treated as garbage.
const maxTokenLength = 1 << 20

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен, включая пробельные и комментарии.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isSpace(ch):
		tok = lx.scanWhitespace()

	case ch == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		tok = lx.scanComment()

	case ch == 'r' && lx.isRawStringStart(1):
		tok = lx.scanRawString(1, token.RawStringLit)

	case ch == 'b' && lx.cursor.PeekAt(1) == 'r' && lx.isRawStringStart(2):
		tok = lx.scanRawString(2, token.RawByteStringLit)

	case ch == 'b' && lx.cursor.PeekAt(1) == '\'':
		tok = lx.scanQuoted(1, '\'', token.ByteLit)

	case ch == 'b' && lx.cursor.PeekAt(1) == '"':
		tok = lx.scanQuoted(1, '"', token.ByteStringLit)

	case ch == '\'':
		tok = lx.scanCharOrLifetime()

	case ch == '"':
		tok = lx.scanQuoted(0, '"', token.StringLit)

	case isIdentStartByte(ch), ch >= utf8RuneSelf:
		// ASCII буква или возможный Unicode идентификатор
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	if tok.Span.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "token exceeds maximum length")
		lx.cursor.SkipToEnd()
		return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(Mark(tok.Span.Start))}
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the remaining input; the last element is always the EOF token.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/3+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Snippet(sp)}
}
