package format

// starPrefixAfter lists the free-text words after which * is a dereference.
var starPrefixAfter = map[string]bool{
	"match": true,
	"for":   true,
	"if":    true,
	"in":    true,
	"as":    true,
}

// ResolveAmbiguities retags * and ! from one Word of lookback. Output length equals input length.
func ResolveAmbiguities(words []Word) []Word {
	out := make([]Word, len(words))
	for i, w := range words {
		out[i] = w
		if i == 0 {
			continue
		}
		prev := words[i-1]
		switch {
		case w.is(Binary, "*") && starIsPrefixAfter(prev):
			out[i] = prefix("*")
		case w.is(Prefix, "!") && prev.Kind == Other && prev.Text != "if":
			out[i] = slim("!")
		case w.is(Prefix, "!") && prev.is(Prefix, "#"):
			out[i] = slim("!")
		}
	}
	return out
}

func starIsPrefixAfter(prev Word) bool {
	switch prev.Kind {
	case Binary, Prefix, OpenBracket, OpenParen, OpenBrace, Semicolon, Comma:
		return true
	case Other:
		return starPrefixAfter[prev.Text]
	}
	return prev.IsLineBreak()
}
