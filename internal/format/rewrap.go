package format

// Rewrap breaks lines wider than MaxLineLength at the last Whitespace Word of the line.
// The Words after that whitespace move to a continuation line indented by IndentWidth.
// Each whitespace is used for at most one wrap, so a line that still does not fit
// stays overlong.
func Rewrap(words []Word) []Word {
	out := make([]Word, 0, len(words)+8)
	column, indent := 0, 0

	// позиция последнего пробела на текущей строке: индекс в out и во входе
	outMark, inMark := -1, -1

	for i := 0; i < len(words); i++ {
		w := words[i]
		switch w.Kind {
		case IndentPlus:
			indent = clampIndent(indent + IndentWidth)
		case IndentMinus:
			indent = clampIndent(indent - IndentWidth)
		}
		if w.IsLineBreak() {
			column = indent
			outMark, inMark = -1, -1
			out = append(out, w)
			continue
		}

		width := w.DisplayWidth()
		column += width
		if w.Kind == Whitespace {
			outMark, inMark = len(out), i
		}

		if column > MaxLineLength && width < MaxLineLength-indent && outMark >= 0 {
			out = append(out[:outMark], marker(LineBreak), space(IndentWidth))
			column = indent + IndentWidth
			i = inMark
			outMark, inMark = -1, -1
			continue
		}
		out = append(out, w)
	}
	return out
}

func clampIndent(n int) int {
	return min(max(n, 0), MaxIndent)
}
