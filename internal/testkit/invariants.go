// Package testkit holds structural checks shared by parser tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"decaf/internal/ast"
	"decaf/internal/source"
)

// CheckTreeInvariants verifies the shape guarantees a parsed tree must keep:
//  1. the root is the last node allocated, since nodes are built bottom-up
//  2. every span is well formed, inside file, and on file's FileID
//  3. every child was allocated before its parent and lies inside the parent's span
//  4. every node is reachable from the root exactly once
//  5. blocks and method bodies hold statements; an ExprStmt holds an expression
func CheckTreeInvariants(tree *ast.Tree, file *source.File) error {
	if tree == nil || file == nil {
		return fmt.Errorf("nil tree or file")
	}
	total := tree.Len()
	if total == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if uint32(tree.Root) != total {
		return fmt.Errorf("root is node %d, want last node %d", tree.Root, total)
	}
	contentLen, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}

	seen := make([]bool, total+1)
	var visit func(id ast.NodeID) error
	visit = func(id ast.NodeID) error {
		if seen[id] {
			return fmt.Errorf("node %d reachable twice", id)
		}
		seen[id] = true
		n := tree.Node(id)
		if n.Kind == ast.KindInvalid {
			return fmt.Errorf("node %d has invalid kind", id)
		}
		sp := n.Span
		if sp.File != file.ID {
			return fmt.Errorf("node %d (%s) span in file %d, want %d", id, n.Kind, sp.File, file.ID)
		}
		if sp.Start > sp.End || sp.End > contentLen {
			return fmt.Errorf("node %d (%s) span %v out of bounds [0,%d]", id, n.Kind, sp, contentLen)
		}
		for _, c := range n.Children {
			if !c.IsValid() {
				continue
			}
			if err := checkSlot(tree, n.Kind, c); err != nil {
				return fmt.Errorf("node %d: %w", id, err)
			}
			if c >= id {
				return fmt.Errorf("node %d (%s) has child %d allocated after it", id, n.Kind, c)
			}
			cs := tree.Node(c).Span
			if cs.Start < sp.Start || cs.End > sp.End {
				return fmt.Errorf("node %d (%s) span %v does not cover child %d span %v", id, n.Kind, sp, c, cs)
			}
			if err := visit(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(tree.Root); err != nil {
		return err
	}
	for id := uint32(1); id <= total; id++ {
		if !seen[id] {
			return fmt.Errorf("node %d is unreachable from the root", id)
		}
	}
	return nil
}

func checkSlot(tree *ast.Tree, parent ast.Kind, child ast.NodeID) error {
	k := tree.Node(child).Kind
	switch parent {
	case ast.KindBlock, ast.KindMethodBody:
		if !k.IsStmt() {
			return fmt.Errorf("%s holds non-statement %s", parent, k)
		}
	case ast.KindExprStmt:
		if !k.IsExpr() {
			return fmt.Errorf("%s holds non-expression %s", parent, k)
		}
	}
	return nil
}
