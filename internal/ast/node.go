package ast

import (
	"decaf/internal/source"
)

// Node is one syntax tree node. Children order is significant; fixed-slot
// kinds use NoNodeID for absent optional parts.
type Node struct {
	Kind     Kind
	Value    string
	Span     source.Span
	Line     uint32
	Children []NodeID
}

// Tree owns every node of one parse. Nodes are immutable once the parser
// returns the tree.
type Tree struct {
	Nodes *Arena[Node]
	Root  NodeID
}

// Node returns nil for NoNodeID.
func (t *Tree) Node(id NodeID) *Node {
	if t == nil {
		return nil
	}
	return t.Nodes.Get(uint32(id))
}

// Kind returns KindInvalid for an absent node.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return KindInvalid
}

// Child returns the i-th child or NoNodeID when out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	n := t.Node(id)
	if n == nil || i < 0 || i >= len(n.Children) {
		return NoNodeID
	}
	return n.Children[i]
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() uint32 {
	return t.Nodes.Len()
}

// Walk visits id and its descendants in pre-order, skipping absent slots.
// Returning false from fn prunes the subtree.
func (t *Tree) Walk(id NodeID, fn func(NodeID, *Node) bool) {
	n := t.Node(id)
	if n == nil || !fn(id, n) {
		return
	}
	for _, c := range n.Children {
		t.Walk(c, fn)
	}
}

// FirstOfKind returns the first node of kind k in pre-order under id.
func (t *Tree) FirstOfKind(id NodeID, k Kind) NodeID {
	found := NoNodeID
	t.Walk(id, func(cur NodeID, n *Node) bool {
		if found.IsValid() {
			return false
		}
		if n.Kind == k {
			found = cur
			return false
		}
		return true
	})
	return found
}
