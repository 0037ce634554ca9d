package format

import (
	"errors"
	"fmt"

	"typeset/internal/diag"
	"typeset/internal/lexer"
	"typeset/internal/source"
	"typeset/internal/token"
)

const (
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth = 4
	// MaxLineLength is the column limit used by Rewrap.
	MaxLineLength = 100
	// MaxIndent caps the rendered indentation.
	MaxIndent = 80
)

var (
	// ErrLex is returned by FormatFile when the lexer reported errors.
	ErrLex = errors.New("format: source has lexical errors")
	// ErrUnknownStage is returned by Stage for a stage name that does not exist.
	ErrUnknownStage = errors.New("format: unknown stage")
)

// maxLexDiagnostics bounds the diagnostics collected for one file.
const maxLexDiagnostics = 128

// Options control the pipeline.
type Options struct {
	// Rewrap enables the overlong-line pass.
	Rewrap bool
	// Hook, if set, is called before each pass; the returned func is called after it.
	Hook func(pass string) (done func())
	// Reporter receives lexer diagnostics from FormatFile.
	Reporter diag.Reporter
}

// Pass is one named stage of the pipeline.
type Pass struct {
	Name string
	Run  func([]Word) []Word
}

// StageClassify is the name of the token-to-word step that precedes every Pass.
const StageClassify = "classify"

// Passes returns the ordered passes run on classified Words.
func Passes(opts Options) []Pass {
	passes := []Pass{
		{Name: "normalize", Run: NormalizeLinebreaks},
		{Name: "resolve", Run: ResolveAmbiguities},
		{Name: "layout", Run: Layout},
	}
	if opts.Rewrap {
		passes = append(passes, Pass{Name: "rewrap", Run: Rewrap})
	}
	return passes
}

// StageNames lists every stage accepted by Stage, in pipeline order.
func StageNames() []string {
	names := []string{StageClassify}
	for _, p := range Passes(Options{Rewrap: true}) {
		names = append(names, p.Name)
	}
	return names
}

// Run applies the passes to classified Words. Sequences of two Words or fewer
// are returned unchanged.
func Run(words []Word, opts Options) []Word {
	if len(words) <= 2 {
		return words
	}
	for _, p := range Passes(opts) {
		words = runPass(p, words, opts)
	}
	return words
}

func runPass(p Pass, words []Word, opts Options) []Word {
	if opts.Hook != nil {
		done := opts.Hook(p.Name)
		defer done()
	}
	return p.Run(words)
}

// Stage classifies tokens and runs the pipeline up to and including the named stage.
func Stage(tokens []token.Token, stage string, opts Options) ([]Word, error) {
	words, err := Classify(tokens)
	if err != nil {
		return nil, err
	}
	if stage == StageClassify {
		return words, nil
	}
	if stage == "rewrap" {
		opts.Rewrap = true
	}
	for _, p := range Passes(opts) {
		if len(words) > 2 {
			words = runPass(p, words, opts)
		}
		if p.Name == stage {
			return words, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
}

// FormatTokens formats a complete token stream (as produced by lexer.Lexer.All).
func FormatTokens(tokens []token.Token, opts Options) ([]byte, error) {
	words, err := Classify(tokens)
	if err != nil {
		return nil, err
	}
	return Render(Run(words, opts)), nil
}

// Tokenize lexes a file into a complete token stream.
// Lexer diagnostics are forwarded to opts.Reporter; ErrLex is returned if any was an error.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	bag := diag.NewBag(maxLexDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.All()

	if opts.Reporter != nil {
		for _, d := range bag.Items() {
			opts.Reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
		}
	}
	if bag.HasErrors() {
		return tokens, fmt.Errorf("%s: %w", file.Path, ErrLex)
	}
	return tokens, nil
}

// FormatFile lexes and formats a source file.
func FormatFile(file *source.File, opts Options) ([]byte, error) {
	tokens, err := Tokenize(file, opts)
	if err != nil {
		return nil, err
	}
	return FormatTokens(tokens, opts)
}

// Source formats an in-memory buffer. A BOM or CRLF line endings are normalized first.
func Source(src []byte) ([]byte, error) {
	fs := source.NewFileSet()
	id, err := fs.AddBytes("<input>", src)
	if err != nil {
		return nil, err
	}
	return FormatFile(fs.Get(id), Options{})
}
