package driver

import (
	"errors"

	"typeset/internal/diag"
	"typeset/internal/format"
	"typeset/internal/source"
	"typeset/internal/token"
)

// TokenizeResult holds the lexer output for one file. Lexer errors are left in Bag.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it completely.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens, err := format.Tokenize(file, format.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if err != nil && !errors.Is(err, format.ErrLex) {
		return nil, err
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// WordsResult holds the Word sequence of one file after a pipeline stage.
type WordsResult struct {
	*TokenizeResult
	Stage string
	Words []format.Word
}

// Words lexes path and runs the formatting pipeline up to stage.
// Files with lexer errors are not run through the pipeline; the error is format.ErrLex.
func Words(path, stage string, maxDiagnostics int, opts format.Options) (*WordsResult, error) {
	tok, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := &WordsResult{TokenizeResult: tok, Stage: stage}
	if tok.Bag.HasErrors() {
		return res, format.ErrLex
	}
	res.Words, err = format.Stage(tok.Tokens, stage, opts)
	if err != nil {
		return res, err
	}
	return res, nil
}
