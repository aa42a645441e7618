package driver

import (
	"context"
	"strconv"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/parser"
	"decaf/internal/source"
	"decaf/internal/token"
	"decaf/internal/trace"
)

// ExprSourceName is the virtual file name used by ParseExprSource.
const ExprSourceName = "<expr>"

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
	// Err is the lexical or syntax failure, also present in Bag.
	Err error
}

// Parse loads and parses one program file.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, fs.Get(fileID), maxDiagnostics, false), nil
}

// ParseExprSource parses src as a single expression.
func ParseExprSource(ctx context.Context, src string, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(ExprSourceName, []byte(src))
	return parseLoaded(ctx, fs, fs.Get(fileID), maxDiagnostics, true)
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int, expr bool) *ParseResult {
	res := &ParseResult{FileSet: fs, File: file, Bag: diag.NewBag(maxDiagnostics)}
	toks, err := tokenizeFile(ctx, file, res.Bag)
	if err != nil {
		res.Err = err
		return res
	}
	res.Tree, res.Err = parseTokens(ctx, toks, res.Bag, expr)
	return res
}

func parseTokens(ctx context.Context, toks []token.Token, bag *diag.Bag, expr bool) (*ast.Tree, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.ParentFrom(ctx))
	opts := parser.Options{Reporter: diag.BagReporter{Bag: bag}}
	var (
		tree *ast.Tree
		err  error
	)
	if expr {
		tree, err = parser.ParseExpression(toks, opts)
	} else {
		tree, err = parser.ParseTokens(toks, opts)
	}
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.WithExtra("nodes", strconv.FormatUint(uint64(tree.Len()), 10)).End("")
	return tree, nil
}
