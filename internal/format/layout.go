package format

// Layout inserts separators between Words, driven by a stack of contexts that follows
// brace, bracket, paren and angle nesting. The input's last Word is replaced by EOF.
func Layout(words []Word) []Word {
	out := make([]Word, 0, 2*len(words))
	var stack contextStack

	for i := 0; i+1 < len(words); i++ {
		cur, next := words[i], words[i+1]
		out = append(out, cur)

		// список с переносом после открывающей скобки раскладывается по строкам
		if stack.top() == List && (cur.Kind == OpenBracket || cur.Kind == OpenParen) && next.Kind == IndentPlus {
			stack.replaceTop(ListExploded)
		}

		if cur.is(Other, "return") && next.Kind == CloseBrace {
			out = append(out, marker(Semicolon))
		}

		// запятая внутри блока: это не блок, а список (литерал структуры, ветки match)
		if stack.top() == CodeBlock && cur.Kind == Comma {
			stack.replaceTop(CurlyList)
		}

		sep, ok := decide(stack.top(), cur, next)
		if cur.isLineComment() && next.Kind != EOF && !next.IsLineBreak() && !(ok && sep.IsLineBreak()) {
			sep, ok = marker(LineBreak), true
		}
		if ok {
			out = append(out, sep)
		}

		switch next.Kind {
		case OpenBracket, OpenParen:
			stack.push(List)
		case OpenBrace:
			stack.push(CodeBlock)
		case Slim:
			switch next.Text {
			case "<":
				stack.push(List)
			case ">":
				stack.pop()
			}
		case CloseBrace, CloseBracket, CloseParen:
			stack.pop()
		}
	}

	return append(out, marker(EOF))
}
