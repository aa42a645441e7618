package parser

import (
	"fmt"
	"strings"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// contextRadius is how many tokens around the offending one a SyntaxError keeps.
const contextRadius = 2

// SyntaxError describes the first grammar mismatch of a parse.
type SyntaxError struct {
	Code     diag.Code
	Line     uint32
	Span     source.Span
	Expected string
	Found    token.Token
	// Context holds up to two tokens before and after Found; Focus is Found's index in it.
	Context []token.Token
	Focus   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s (context: %s)", e.Line, e.Message(), e.ContextString())
}

// Message is the diagnostic text without line and context.
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("expected %s but found %s", e.Expected, e.Found)
}

// ContextString renders the window with the offending token in brackets.
func (e *SyntaxError) ContextString() string {
	parts := make([]string, len(e.Context))
	for i, tok := range e.Context {
		text := tok.Text
		if tok.Kind == token.EOF {
			text = "EOF"
		}
		if i == e.Focus {
			text = "[" + text + "]"
		}
		parts[i] = text
	}
	return strings.Join(parts, ", ")
}
