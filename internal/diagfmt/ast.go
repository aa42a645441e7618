package diagfmt

import (
	"encoding/json"
	"io"

	"decaf/internal/ast"
	"decaf/internal/source"
)

// ASTNodeJSON is the JSON shape of one syntax node. Absent optional slots
// are kept as null so child positions stay meaningful.
type ASTNodeJSON struct {
	Kind     string         `json:"kind"`
	Value    string         `json:"value,omitempty"`
	Line     uint32         `json:"line"`
	Span     *LocationJSON  `json:"span,omitempty"`
	Children []*ASTNodeJSON `json:"children,omitempty"`
}

// FormatASTOutline writes the indented `kind[: value]` outline.
func FormatASTOutline(w io.Writer, tree *ast.Tree) error {
	return tree.WriteOutline(w)
}

// BuildASTJSON converts the subtree rooted at id. fs may be nil, in which
// case spans are omitted.
func BuildASTJSON(tree *ast.Tree, id ast.NodeID, fs *source.FileSet) *ASTNodeJSON {
	n := tree.Node(id)
	if n == nil {
		return nil
	}
	out := &ASTNodeJSON{
		Kind:  n.Kind.String(),
		Value: n.Value,
		Line:  n.Line,
	}
	if fs != nil {
		loc := makeLocation(n.Span, fs, PathModeAuto, true)
		out.Span = &loc
	}
	if len(n.Children) > 0 {
		out.Children = make([]*ASTNodeJSON, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = BuildASTJSON(tree, c, fs)
		}
	}
	return out
}

// FormatASTJSON writes the whole tree as indented JSON.
func FormatASTJSON(w io.Writer, tree *ast.Tree, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildASTJSON(tree, tree.Root, fs))
}
