package sema

import (
	"strings"
	"testing"

	"decaf/internal/ast"
	"decaf/internal/parser"
	"decaf/internal/source"
)

func parse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dcf", []byte(src)))
	tree, err := parser.ParseFile(file, parser.Options{})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return tree
}

func check(t *testing.T, src string) Result {
	t.Helper()
	return Check(parse(t, src), Options{})
}

// wantErrors asserts the exact error list, in order.
func wantErrors(t *testing.T, res Result, want ...string) {
	t.Helper()
	if len(res.Errors) != len(want) {
		t.Fatalf("want %d errors, got %d:\n  %s", len(want), len(res.Errors), strings.Join(res.Errors, "\n  "))
	}
	for i := range want {
		if res.Errors[i] != want[i] {
			t.Errorf("error %d:\n  got  %q\n  want %q", i, res.Errors[i], want[i])
		}
	}
	if res.OK != (len(want) == 0) {
		t.Errorf("OK = %v with %d errors", res.OK, len(want))
	}
}

// exprOf returns the expression of the n-th ExprStmt in pre-order.
func exprOf(t *testing.T, tree *ast.Tree, n int) ast.NodeID {
	t.Helper()
	seen := 0
	found := ast.NoNodeID
	tree.Walk(tree.Root, func(id ast.NodeID, node *ast.Node) bool {
		if found.IsValid() {
			return false
		}
		if node.Kind == ast.KindExprStmt {
			if seen == n {
				found = node.Children[0]
				return false
			}
			seen++
		}
		return true
	})
	if !found.IsValid() {
		t.Fatalf("no expression statement #%d", n)
	}
	return found
}
