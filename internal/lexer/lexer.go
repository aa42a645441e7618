package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

type Options struct {
	// Reporter receives the lexical diagnostic; may be nil.
	Reporter diag.Reporter
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	line   uint32
	err    *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		line:   1,
	}
}

// Next returns the next significant token.
// After EOF it keeps returning EOF. After a lexical error it keeps returning
// the same error.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return lx.eof(), lx.err
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return lx.eof(), nil
	}

	ch := lx.cursor.Peek()
	var (
		tok token.Token
		ok  bool
	)
	switch {
	case isIdentStart(ch):
		tok, ok = lx.scanIdentOrKeyword(), true
	case isDec(ch):
		tok, ok = lx.scanNumber(), true
	case ch == '"':
		tok, ok = lx.scanString()
	default:
		tok, ok = lx.scanOperatorOrPunct()
	}
	if !ok {
		return lx.eof(), lx.fail()
	}
	tok.Line = lx.line
	return tok, nil
}

// Tokenize scans the whole file. The result always ends with EOF.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (lx *Lexer) eof() token.Token {
	return token.Token{
		Kind: token.EOF,
		Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		Line: lx.line,
	}
}

// fail records an error for the character at the cursor.
func (lx *Lexer) fail() *Error {
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	width, err := safecast.Conv[uint32](max(size, 1))
	if err != nil {
		panic(fmt.Errorf("rune width overflow: %w", err))
	}
	lx.err = &Error{
		Line: lx.line,
		Char: r,
		Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + width},
	}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.LexUnknownChar, diag.SevError, lx.err.Span, lx.err.Message(), nil)
	}
	return lx.err
}
