package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"decaf/internal/source"
	"decaf/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Class string      `json:"class"`
	Text  string      `json:"text,omitempty"`
	Line  uint32      `json:"line"`
	Span  source.Span `json:"span"`
}

const (
	tokenKindColumn  = 18
	tokenClassColumn = 10
)

// FormatTokensPretty writes one token per line with its position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		kind := runewidth.FillRight(tok.Kind.String(), tokenKindColumn)
		class := runewidth.FillRight(tok.Category(), tokenClassColumn)
		if _, err := fmt.Fprintf(w, "%3d: %s %s", i+1, class, kind); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Class: tok.Category(),
			Text:  tok.Text,
			Line:  tok.Line,
			Span:  tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
