package ast

import (
	"io"
	"strings"
)

// Outline renders the subtree rooted at id, one line per node as
// `kind[: value]`, children indented two spaces deeper. Absent slots are skipped.
func (t *Tree) Outline(id NodeID) string {
	var sb strings.Builder
	t.writeOutline(&sb, id, 0)
	return sb.String()
}

// WriteOutline streams Outline(t.Root) to w.
func (t *Tree) WriteOutline(w io.Writer) error {
	_, err := io.WriteString(w, t.Outline(t.Root))
	return err
}

func (t *Tree) writeOutline(sb *strings.Builder, id NodeID, depth int) {
	n := t.Node(id)
	if n == nil {
		return
	}
	for range depth {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	if n.Value != "" {
		sb.WriteString(": ")
		sb.WriteString(n.Value)
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		t.writeOutline(sb, c, depth+1)
	}
}
