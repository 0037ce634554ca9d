package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"typeset/internal/format"
)

// WordOutput is the JSON shape of one Word.
type WordOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Width int    `json:"width,omitempty"`
}

// FormatWordsPretty prints one Word per line. Layout markers are shown by kind only.
func FormatWordsPretty(w io.Writer, words []format.Word) error {
	for i, word := range words {
		var err error
		switch {
		case word.Text != "":
			_, err = fmt.Fprintf(w, "%4d: %-16s %q\n", i+1, word.Kind, word.Text)
		case word.Kind == format.Whitespace:
			_, err = fmt.Fprintf(w, "%4d: %-16s x%d\n", i+1, word.Kind, word.Width)
		default:
			_, err = fmt.Fprintf(w, "%4d: %s\n", i+1, word.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatWordsJSON writes the Word sequence as a JSON array.
func FormatWordsJSON(w io.Writer, words []format.Word) error {
	output := make([]WordOutput, len(words))
	for i, word := range words {
		output[i] = WordOutput{Kind: word.Kind.String(), Text: word.Text, Width: word.Width}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
