package format

// writer accumulates rendered output. Indentation is written lazily before the
// first text of a line, so blank lines carry no trailing spaces.
type writer struct {
	buf         []byte
	indent      int
	atLineStart bool
}

func (w *writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indent {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// WriteString writes text, handling indentation.
func (w *writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

func (w *writer) newlines(n int) {
	for range n {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// Render turns a laid-out Word sequence into text.
func Render(words []Word) []byte {
	w := &writer{buf: make([]byte, 0, 8*len(words))}
	for _, word := range words {
		switch word.Kind {
		case IndentPlus:
			w.indent = clampIndent(w.indent + IndentWidth)
			w.newlines(1)
		case IndentMinus:
			w.indent = clampIndent(w.indent - IndentWidth)
			w.newlines(1)
		case LineBreak:
			w.newlines(1)
		case LineBreakDouble:
			w.newlines(2)
		default:
			w.WriteString(word.Render())
		}
	}
	return w.buf
}
