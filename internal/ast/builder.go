package ast

import (
	"decaf/internal/source"
)

type Builder struct {
	tree *Tree
}

// NewBuilder creates a builder; capHint is the expected node count, zero is allowed.
func NewBuilder(capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{
		tree: &Tree{Nodes: NewArena[Node](capHint)},
	}
}

// New allocates a node. Children must already exist; nodes are created bottom-up.
func (b *Builder) New(kind Kind, value string, sp source.Span, line uint32, children ...NodeID) NodeID {
	var kids []NodeID
	if len(children) > 0 {
		kids = make([]NodeID, len(children))
		copy(kids, children)
	}
	return NodeID(b.tree.Nodes.Allocate(Node{
		Kind:     kind,
		Value:    value,
		Span:     sp,
		Line:     line,
		Children: kids,
	}))
}

// Get exposes a node under construction.
func (b *Builder) Get(id NodeID) *Node {
	return b.tree.Node(id)
}

// Finish sets the root and hands over the tree.
func (b *Builder) Finish(root NodeID) *Tree {
	b.tree.Root = root
	return b.tree
}
