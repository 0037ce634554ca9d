package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"typeset/internal/source"
	"typeset/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Span   source.Span `json:"span"`
	Body   string      `json:"body,omitempty"`
	Suffix string      `json:"suffix,omitempty"`
	Hashes int         `json:"hashes,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if tok.Lit.Suffix != "" {
			fmt.Fprintf(w, " (suffix %s)", tok.Lit.Suffix)
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.IsLiteral() {
			out.Body = tok.Lit.Body
			out.Suffix = tok.Lit.Suffix
			out.Hashes = tok.Lit.Hashes
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
