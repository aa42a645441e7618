package ast

import (
	"testing"

	"decaf/internal/source"
)

// buildSum builds `x = 1 + 2;` wrapped in a program.
func buildSum(b *Builder, rhs string) NodeID {
	sp := source.Span{}
	x := b.New(KindIdent, "x", sp, 1)
	one := b.New(KindIntLit, "1", sp, 1)
	other := b.New(KindIntLit, rhs, sp, 1)
	sum := b.New(KindAdditive, "+", sp, 1, one, other)
	assign := b.New(KindAssign, "=", sp, 1, x, sum)
	stmt := b.New(KindExprStmt, "", sp, 1, assign)
	return b.New(KindProgram, "", sp, 1, stmt)
}

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatalf("empty arena returned a value")
	}
	id := a.Allocate(7)
	if id != 1 || *a.Get(id) != 7 || a.Len() != 1 {
		t.Fatalf("unexpected arena state: id=%d len=%d", id, a.Len())
	}
}

func TestOutline(t *testing.T) {
	b := NewBuilder(0)
	tree := b.Finish(buildSum(b, "2"))
	want := "Program\n" +
		"  ExprStmt\n" +
		"    Assignment: =\n" +
		"      Identifier: x\n" +
		"      Additive: +\n" +
		"        IntLiteral: 1\n" +
		"        IntLiteral: 2\n"
	if got := tree.Outline(tree.Root); got != want {
		t.Fatalf("outline mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestOutlineSkipsAbsentSlots(t *testing.T) {
	b := NewBuilder(0)
	sp := source.Span{}
	cond := b.New(KindBoolLit, "true", sp, 1)
	then := b.New(KindBlock, "", sp, 1)
	ifs := b.New(KindIfStmt, "", sp, 1, cond, then, NoNodeID)
	tree := b.Finish(ifs)
	if got := tree.Outline(ifs); got != "IfStmt\n  BoolLiteral: true\n  Block\n" {
		t.Fatalf("got %q", got)
	}
	view, ok := tree.IfStmt(ifs)
	if !ok || view.Else.IsValid() || view.Cond != cond {
		t.Fatalf("IfStmt view: %+v %v", view, ok)
	}
}

func TestEqual(t *testing.T) {
	b1, b2, b3 := NewBuilder(0), NewBuilder(0), NewBuilder(0)
	t1 := b1.Finish(buildSum(b1, "2"))
	t2 := b2.Finish(buildSum(b2, "2"))
	t3 := b3.Finish(buildSum(b3, "3"))
	if !Equal(t1, t1.Root, t2, t2.Root) {
		t.Fatalf("identical trees compare unequal")
	}
	if Equal(t1, t1.Root, t3, t3.Root) {
		t.Fatalf("different literal compared equal")
	}
	if !Equal(t1, NoNodeID, t2, NoNodeID) || Equal(t1, t1.Root, t2, NoNodeID) {
		t.Fatalf("absent node handling is wrong")
	}
}

func TestWalkAndFirstOfKind(t *testing.T) {
	b := NewBuilder(0)
	tree := b.Finish(buildSum(b, "2"))
	var kinds []Kind
	tree.Walk(tree.Root, func(_ NodeID, n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != KindAdditive
	})
	want := []Kind{KindProgram, KindExprStmt, KindAssign, KindIdent, KindAdditive}
	if len(kinds) != len(want) {
		t.Fatalf("walk visited %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("walk order %v, want %v", kinds, want)
		}
	}
	lit := tree.FirstOfKind(tree.Root, KindIntLit)
	if tree.Node(lit).Value != "1" {
		t.Fatalf("FirstOfKind returned %q", tree.Node(lit).Value)
	}
	if tree.FirstOfKind(tree.Root, KindCall).IsValid() {
		t.Fatalf("found a call where none exists")
	}
}

func TestViewsRejectWrongKind(t *testing.T) {
	b := NewBuilder(0)
	tree := b.Finish(buildSum(b, "2"))
	stmt := tree.Child(tree.Root, 0)
	assign := tree.Child(stmt, 0)
	if _, ok := tree.FuncDecl(assign); ok {
		t.Fatalf("FuncDecl view accepted an assignment")
	}
	bin, ok := tree.Binary(assign)
	if !ok || bin.Op != "=" || tree.Kind(bin.Left) != KindIdent {
		t.Fatalf("Binary view on assignment: %+v %v", bin, ok)
	}
	if tree.Child(stmt, 5) != NoNodeID || tree.Kind(NoNodeID) != KindInvalid {
		t.Fatalf("out-of-range access should be absent")
	}
}

func TestKindClassification(t *testing.T) {
	if !KindMultiplicative.IsBinary() || KindAssign.IsBinary() || KindUnary.IsBinary() {
		t.Fatalf("IsBinary boundaries")
	}
	if !KindThis.IsExpr() || KindExprStmt.IsExpr() {
		t.Fatalf("IsExpr boundaries")
	}
	if !KindVarDecl.IsStmt() || !KindExprStmt.IsStmt() || KindMethodBody.IsStmt() {
		t.Fatalf("IsStmt boundaries")
	}
	for k := KindInvalid; k <= KindThis; k++ {
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
