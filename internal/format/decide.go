package format

// parenKeywords are the free-text words spaced from a following "(".
var parenKeywords = map[string]bool{
	"if":    true,
	"match": true,
	"for":   true,
	"let":   true,
	"while": true,
}

var none = Word{}

// decide returns the separator to emit between cur and next under ctx.
// ok is false when nothing should be emitted.
func decide(ctx Context, cur, next Word) (sep Word, ok bool) {
	switch ctx {
	case CodeBlock, CurlyList:
		sep = decideBlock(ctx, cur, next)
	case List:
		sep = decideList(cur, next)
	case ListExploded:
		sep = decideExploded(cur, next)
	}
	return sep, sep != none
}

func decideBlock(ctx Context, cur, next Word) Word {
	if cur.Kind == Slim && next.Kind == OpenBrace {
		if cur.Text == "::" {
			return none
		}
		return space(1)
	}
	if cur.Kind == Other && next.Kind == OpenParen {
		if parenKeywords[cur.Text] {
			return space(1)
		}
		return none
	}

	switch {
	case cur.Kind == OpenBrace && next.Kind == CloseBrace:
		return none
	case cur.Kind == OpenBrace:
		return marker(IndentPlus)
	case next.Kind == CloseBrace:
		return marker(IndentMinus)
	}

	if cur.IsLineBreak() || next.IsLineBreak() || next.Kind == EOF {
		return none
	}
	if spacedPair(cur, next) || next.Kind == OpenBrace {
		return space(1)
	}

	if cur.Kind == CloseBrace && next.Kind == Other {
		if next.Text == "else" {
			return space(1)
		}
		return marker(LineBreak)
	}
	if isStatementSep(cur) && next.Kind == Comment {
		return space(2)
	}
	if cur.Kind == CloseBrace && isStatementSep(next) {
		return none
	}

	if cur.Kind == Colon {
		return space(1)
	}
	if ctx == CurlyList && cur.Kind == Comma {
		return space(1)
	}

	switch cur.Kind {
	case Semicolon, Comma, Comment, CloseBrace:
		return marker(LineBreak)
	}
	if next.Kind == Prefix {
		if next.Text == "#" {
			return marker(LineBreak)
		}
		return space(1)
	}
	if next.Kind == Comment {
		return space(2)
	}
	return none
}

func decideList(cur, next Word) Word {
	if cur.IsLineBreak() {
		// перенос внутри строки списка: продолжение с фиксированным отступом
		return space(IndentWidth)
	}
	if next.IsLineBreak() {
		return none
	}
	if spacedPair(cur, next) {
		return space(1)
	}
	switch cur.Kind {
	case Comma, Colon, Semicolon:
		return space(1)
	}
	switch next.Kind {
	case OpenBrace, OpenBracket:
		return space(1)
	case Comment:
		return space(2)
	}
	return none
}

func decideExploded(cur, next Word) Word {
	if next.Kind == CloseBracket || next.Kind == CloseParen {
		return marker(IndentMinus)
	}
	if cur.IsLineBreak() || next.IsLineBreak() {
		return none
	}
	if spacedPair(cur, next) || next.Kind == OpenBrace || next.Kind == OpenBracket {
		return space(1)
	}
	if isStatementSep(cur) && next.Kind == Comment {
		return space(2)
	}
	if (cur.Kind == CloseBracket || cur.Kind == CloseParen) && next.Kind == Comma {
		return none
	}
	switch cur.Kind {
	case CloseBracket, CloseParen, Comma, Comment:
		return marker(LineBreak)
	}
	if next.Kind == Comment {
		return space(2)
	}
	return none
}

// spacedPair: two free-text words, or a binary operator on either side.
func spacedPair(cur, next Word) bool {
	return (cur.Kind == Other && next.Kind == Other) || cur.Kind == Binary || next.Kind == Binary
}

func isStatementSep(w Word) bool {
	return w.Kind == Semicolon || w.Kind == Comma
}
