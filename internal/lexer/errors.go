package lexer

import (
	"fmt"

	"decaf/internal/source"
)

// Error is a fatal lexical failure: a character no token pattern accepts.
type Error struct {
	Line uint32
	Char rune
	Span source.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message())
}

// Message is the diagnostic text without the line prefix.
func (e *Error) Message() string {
	return fmt.Sprintf("Unexpected character: '%c'", e.Char)
}
