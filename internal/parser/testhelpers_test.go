package parser

import (
	"fmt"
	"strings"
	"testing"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/source"
	"decaf/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dcf", []byte(src)))
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return toks
}

func mustParse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree, err := ParseTokens(lex(t, src), Options{})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return tree
}

func mustParseExpr(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree, err := ParseExpression(lex(t, src), Options{})
	if err != nil {
		t.Fatalf("parse expression %q: %v", src, err)
	}
	return tree
}

func mustFail(t *testing.T, src string) *SyntaxError {
	t.Helper()
	bag := diag.NewBag(4)
	tree, err := ParseTokens(lex(t, src), Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatalf("expected syntax error for %q, got tree:\n%s", src, tree.Outline(tree.Root))
	}
	if tree != nil {
		t.Fatalf("partial tree returned alongside error")
	}
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != synErr.Code {
		t.Fatalf("expected exactly one %s diagnostic, got %s", synErr.Code.ID(), diagnosticsSummary(bag))
	}
	return synErr
}

// sexpr renders an expression subtree compactly, e.g. (+ 1 (* 2 3)).
func sexpr(tree *ast.Tree, id ast.NodeID) string {
	n := tree.Node(id)
	if n == nil {
		return "_"
	}
	if len(n.Children) == 0 {
		if n.Value == "" {
			return n.Kind.String()
		}
		return n.Value
	}
	parts := make([]string, 0, len(n.Children)+1)
	head := n.Value
	if head == "" || n.Kind == ast.KindMember || n.Kind == ast.KindNew {
		head = n.Kind.String()
		if n.Value != "" {
			head += ":" + n.Value
		}
	}
	parts = append(parts, head)
	for _, c := range n.Children {
		parts = append(parts, sexpr(tree, c))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
