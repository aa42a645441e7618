package ast

// Equal reports whether two subtrees have the same shape, kinds, values and
// child order. Spans and lines are ignored.
func Equal(a *Tree, aid NodeID, b *Tree, bid NodeID) bool {
	na, nb := a.Node(aid), b.Node(bid)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	if na.Kind != nb.Kind || na.Value != nb.Value || len(na.Children) != len(nb.Children) {
		return false
	}
	for i := range na.Children {
		if !Equal(a, na.Children[i], b, nb.Children[i]) {
			return false
		}
	}
	return true
}
