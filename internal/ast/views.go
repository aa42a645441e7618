package ast

// Typed accessors over the fixed child slots of each node kind. Each returns
// ok=false when id is not of the expected kind.

type PackageDecl struct {
	Name string
}

func (t *Tree) PackageDecl(id NodeID) (PackageDecl, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindPackageDecl {
		return PackageDecl{}, false
	}
	return PackageDecl{Name: n.Value}, true
}

type ClassDecl struct {
	Name    string
	Methods []NodeID
}

func (t *Tree) ClassDecl(id NodeID) (ClassDecl, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindClassDecl {
		return ClassDecl{}, false
	}
	return ClassDecl{Name: n.Value, Methods: n.Children}, true
}

// FuncDecl covers both top-level functions and class methods.
type FuncDecl struct {
	Name       string
	Params     []NodeID
	ReturnType NodeID
	Body       NodeID
	IsMethod   bool
}

func (t *Tree) FuncDecl(id NodeID) (FuncDecl, bool) {
	n := t.Node(id)
	if n == nil || (n.Kind != KindFuncDecl && n.Kind != KindMethodDecl) || len(n.Children) != 3 {
		return FuncDecl{}, false
	}
	var params []NodeID
	if pl := t.Node(n.Children[0]); pl != nil {
		params = pl.Children
	}
	return FuncDecl{
		Name:       n.Value,
		Params:     params,
		ReturnType: n.Children[1],
		Body:       n.Children[2],
		IsMethod:   n.Kind == KindMethodDecl,
	}, true
}

type Param struct {
	Name string
	Type NodeID
}

func (t *Tree) Param(id NodeID) (Param, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindParam || len(n.Children) != 1 {
		return Param{}, false
	}
	return Param{Name: n.Value, Type: n.Children[0]}, true
}

// TypeName returns the spelled type of a Type node, or "" when absent.
func (t *Tree) TypeName(id NodeID) string {
	n := t.Node(id)
	if n == nil || n.Kind != KindType {
		return ""
	}
	return n.Value
}

type VarDecl struct {
	Name string
	Type NodeID
	Init NodeID
}

func (t *Tree) VarDecl(id NodeID) (VarDecl, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindVarDecl || len(n.Children) != 2 {
		return VarDecl{}, false
	}
	return VarDecl{Name: n.Value, Type: n.Children[0], Init: n.Children[1]}, true
}

type IfStmt struct {
	Cond NodeID
	Then NodeID
	Else NodeID
}

func (t *Tree) IfStmt(id NodeID) (IfStmt, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindIfStmt || len(n.Children) != 3 {
		return IfStmt{}, false
	}
	return IfStmt{Cond: n.Children[0], Then: n.Children[1], Else: n.Children[2]}, true
}

type WhileStmt struct {
	Cond NodeID
	Body NodeID
}

func (t *Tree) WhileStmt(id NodeID) (WhileStmt, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindWhileStmt || len(n.Children) != 2 {
		return WhileStmt{}, false
	}
	return WhileStmt{Cond: n.Children[0], Body: n.Children[1]}, true
}

type ForStmt struct {
	Init   NodeID
	Cond   NodeID
	Update NodeID
	Body   NodeID
}

func (t *Tree) ForStmt(id NodeID) (ForStmt, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindForStmt || len(n.Children) != 4 {
		return ForStmt{}, false
	}
	return ForStmt{Init: n.Children[0], Cond: n.Children[1], Update: n.Children[2], Body: n.Children[3]}, true
}

// ReturnStmt's Value is NoNodeID for a bare return.
type ReturnStmt struct {
	Value NodeID
}

func (t *Tree) ReturnStmt(id NodeID) (ReturnStmt, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindReturnStmt || len(n.Children) != 1 {
		return ReturnStmt{}, false
	}
	return ReturnStmt{Value: n.Children[0]}, true
}

// Binary covers every binary operator level and assignment.
type Binary struct {
	Op    string
	Left  NodeID
	Right NodeID
}

func (t *Tree) Binary(id NodeID) (Binary, bool) {
	n := t.Node(id)
	if n == nil || !(n.Kind.IsBinary() || n.Kind == KindAssign) || len(n.Children) != 2 {
		return Binary{}, false
	}
	return Binary{Op: n.Value, Left: n.Children[0], Right: n.Children[1]}, true
}

type Unary struct {
	Op      string
	Operand NodeID
}

func (t *Tree) Unary(id NodeID) (Unary, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindUnary || len(n.Children) != 1 {
		return Unary{}, false
	}
	return Unary{Op: n.Value, Operand: n.Children[0]}, true
}

type Call struct {
	Callee NodeID
	Args   []NodeID
}

func (t *Tree) Call(id NodeID) (Call, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindCall || len(n.Children) == 0 {
		return Call{}, false
	}
	return Call{Callee: n.Children[0], Args: n.Children[1:]}, true
}

type Member struct {
	Object NodeID
	Name   string
}

func (t *Tree) Member(id NodeID) (Member, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindMember || len(n.Children) != 1 {
		return Member{}, false
	}
	return Member{Object: n.Children[0], Name: n.Value}, true
}

type Index struct {
	Object NodeID
	Index  NodeID
}

func (t *Tree) Index(id NodeID) (Index, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindIndex || len(n.Children) != 2 {
		return Index{}, false
	}
	return Index{Object: n.Children[0], Index: n.Children[1]}, true
}

type NewExpr struct {
	Class string
	Args  []NodeID
}

func (t *Tree) NewExpr(id NodeID) (NewExpr, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindNew {
		return NewExpr{}, false
	}
	return NewExpr{Class: n.Value, Args: n.Children}, true
}
