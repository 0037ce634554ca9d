package format

// NormalizeLinebreaks deletes or retags source line breaks using a (prev, break, next) window.
// The first and last Words are copied unchanged.
func NormalizeLinebreaks(words []Word) []Word {
	if len(words) < 2 {
		return append([]Word(nil), words...)
	}
	out := make([]Word, 0, len(words))
	out = append(out, words[0])
	for i := 1; i < len(words)-1; i++ {
		cur := words[i]
		if !cur.isSourceBreak() {
			out = append(out, cur)
			continue
		}
		if w, keep := normalizeBreak(words[i-1], cur, words[i+1]); keep {
			out = append(out, w)
		}
	}
	return append(out, words[len(words)-1])
}

// normalizeBreak применяет правила по порядку, первое совпадение выигрывает.
func normalizeBreak(prev, br, next Word) (Word, bool) {
	switch next.Kind {
	case CloseBrace, CloseBracket, CloseParen, Comma, Semicolon:
		return br, false
	}
	if prev.Kind == OpenBrace {
		return br, false
	}
	switch next.Kind {
	case OpenBrace, OpenBracket, OpenParen, Slim:
		return br, false
	}
	if prev.Kind == Slim {
		return br, false
	}
	if prev.Kind == OpenBracket || prev.Kind == OpenParen {
		// exploded list
		return marker(IndentPlus), true
	}
	if prev.Kind == CloseBrace && next.Kind == Other {
		// } else на одной строке
		return br, next.Text != "else"
	}
	if prev.Kind == Other && next.Kind == Other {
		return br, !(prev.Text == "else" && next.Text == "if")
	}
	return br, true
}
