package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"typeset/internal/diag"
	"typeset/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		note:   mk(color.FgGreen),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i, d := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
	if hidden := bag.Len() - len(items); hidden > 0 {
		fmt.Fprintf(w, "\n... and %d more\n", hidden)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity)
	file := fileOf(fs, d.Primary)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}

	start, end := fs.Resolve(d.Primary)
	path := displayPath(file.Path, opts.PathMode, opts.BaseDir)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		sev.Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)

	writeExcerpt(w, file, start, end, int(opts.Context), pal)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fileOf(fs, n.Span)
		if nf == nil {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
			continue
		}
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			pal.note.Sprint("note:"), displayPath(nf.Path, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
	}
}

// writeExcerpt печатает строки контекста и подчёркивание под первой строкой span.
func writeExcerpt(w io.Writer, f *source.File, start, end source.LineCol, context int, pal palette) {
	if context < 0 {
		context = 0
	}
	first := int(start.Line) - context
	if first < 1 {
		first = 1
	}
	last := min(int(start.Line)+context, len(f.LineIdx)+1)
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		// #nosec G115 -- ln is at least 1 and bounded by the line count of a uint32-sized file
		text := f.GetLine(uint32(ln))
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), strings.TrimRight(text, "\r"))
		if ln != int(start.Line) {
			continue
		}
		pad, width := caretGeometry(text, start, end)
		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(underline))
	}
}

// caretGeometry returns the display column where the underline starts and its width.
// Spans that continue on later lines are underlined up to the end of the first line.
func caretGeometry(line string, start, end source.LineCol) (pad, width int) {
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	pad = runewidth.StringWidth(line[:from])
	if to > from {
		width = runewidth.StringWidth(line[from:to])
	}
	return pad, max(width, 1)
}

func fileOf(fs *source.FileSet, sp source.Span) *source.File {
	if fs == nil || int(sp.File) >= fs.Len() {
		return nil
	}
	return fs.Get(sp.File)
}
