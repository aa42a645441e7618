package driver

import (
	"context"
	"strconv"

	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/source"
	"decaf/internal/token"
	"decaf/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err is the lexical failure, also present in Bag.
	Err error
}

// Tokenize loads path and scans it. The returned error is an I/O failure;
// lexical errors land in the result.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	toks, lexErr := tokenizeFile(ctx, file, bag)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  toks,
		Bag:     bag,
		Err:     lexErr,
	}, nil
}

func tokenizeFile(ctx context.Context, file *source.File, bag *diag.Bag) ([]token.Token, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "tokenize", trace.ParentFrom(ctx))
	toks, err := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.WithExtra("tokens", itoa(len(toks))).End("")
	return toks, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
