package sema

import (
	"fmt"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/symbols"
	"decaf/internal/types"
)

// checkExpr infers the type of an expression and records it in ExprTypes.
// types.None means the type is unknown; the cause has been reported.
func (tc *typeChecker) checkExpr(id ast.NodeID) types.Type {
	t := tc.inferExpr(id)
	if id.IsValid() {
		tc.result.ExprTypes[id] = t
	}
	return t
}

func (tc *typeChecker) inferExpr(id ast.NodeID) types.Type {
	n := tc.tree.Node(id)
	if n == nil {
		return types.None
	}
	switch n.Kind {
	case ast.KindAssign:
		return tc.checkAssign(id)
	case ast.KindLogicalOr, ast.KindLogicalAnd, ast.KindEquality,
		ast.KindRelational, ast.KindAdditive, ast.KindMultiplicative:
		return tc.checkBinary(id)
	case ast.KindUnary:
		return tc.checkUnary(id)
	case ast.KindCall:
		return tc.checkCall(id)
	case ast.KindNew:
		return tc.checkNew(id)
	case ast.KindMember:
		tc.checkExpr(tc.tree.Child(id, 0))
		return types.None
	case ast.KindIndex:
		tc.checkExpr(tc.tree.Child(id, 0))
		tc.checkExpr(tc.tree.Child(id, 1))
		return types.None
	case ast.KindParen:
		return tc.checkExpr(tc.tree.Child(id, 0))
	case ast.KindIdent:
		return tc.checkIdent(id, n.Value)
	case ast.KindIntLit:
		return types.Int
	case ast.KindStringLit:
		return types.String
	case ast.KindBoolLit:
		return types.Bool
	case ast.KindNullLit:
		return types.Null
	case ast.KindThis:
		if tc.currentClass == "" {
			return types.None
		}
		return types.Type(tc.currentClass)
	case ast.KindProgram, ast.KindPackageDecl, ast.KindClassDecl, ast.KindFuncDecl,
		ast.KindMethodDecl, ast.KindParamList, ast.KindParam, ast.KindType,
		ast.KindMethodBody, ast.KindVarDecl, ast.KindIfStmt, ast.KindWhileStmt,
		ast.KindForStmt, ast.KindReturnStmt, ast.KindBlock, ast.KindExprStmt:
		panic(fmt.Sprintf("sema: %s in expression position", n.Kind))
	case ast.KindInvalid:
		panic("sema: invalid node in tree")
	default:
		panic(fmt.Sprintf("sema: unhandled node kind %s", n.Kind))
	}
}

func (tc *typeChecker) checkIdent(id ast.NodeID, name string) types.Type {
	sym, ok := tc.scopes.Lookup(name)
	if !ok {
		tc.report(diag.SemaUndefinedVariable, id, "Undefined variable: '%s'", name)
		return types.None
	}
	return sym.ValueType()
}

// checkAssign checks both sides independently; the expression has the type
// of its target.
func (tc *typeChecker) checkAssign(id ast.NodeID) types.Type {
	bin, ok := tc.tree.Binary(id)
	if !ok {
		return types.None
	}
	lt := tc.checkExpr(bin.Left)
	rt := tc.checkExpr(bin.Right)
	if lt.Known() && rt.Known() && !types.Assignable(rt, lt) {
		tc.report(diag.SemaTypeMismatch, id,
			"Type error: Cannot assign value of type '%s' to '%s' of type '%s'",
			rt, tc.targetName(bin.Left), lt)
	}
	return lt
}

// targetName names an assignment target by the first identifier inside it.
func (tc *typeChecker) targetName(id ast.NodeID) string {
	if ident := tc.tree.FirstOfKind(id, ast.KindIdent); ident.IsValid() {
		return tc.tree.Node(ident).Value
	}
	return "expression"
}

// checkBinary applies the operator rules once both operand types are known.
// Comparisons and logical operators are bool even when they fail.
func (tc *typeChecker) checkBinary(id ast.NodeID) types.Type {
	bin, ok := tc.tree.Binary(id)
	if !ok {
		return types.None
	}
	lt := tc.checkExpr(bin.Left)
	rt := tc.checkExpr(bin.Right)
	class := types.ClassifyBinary(bin.Op)
	if !lt.Known() || !rt.Known() {
		if class == types.OpArithmetic {
			return types.None
		}
		return types.Bool
	}

	result, ok := types.CheckBinary(bin.Op, lt, rt)
	if ok {
		return result
	}
	switch class {
	case types.OpRelational:
		tc.report(diag.SemaInvalidOperands, id,
			"Type error: Cannot compare types '%s' and '%s'", lt, rt)
	case types.OpEquality:
		tc.report(diag.SemaInvalidOperands, id,
			"Type error: Cannot compare types '%s' and '%s' for equality", lt, rt)
	case types.OpLogical:
		tc.report(diag.SemaInvalidOperands, id,
			"Type error: Cannot apply operator '%s' to types '%s' and '%s'. Expected 'bool'", bin.Op, lt, rt)
	default:
		tc.report(diag.SemaInvalidOperands, id,
			"Type error: Cannot apply operator '%s' to types '%s' and '%s'", bin.Op, lt, rt)
	}
	return result
}

func (tc *typeChecker) checkUnary(id ast.NodeID) types.Type {
	un, ok := tc.tree.Unary(id)
	if !ok {
		return types.None
	}
	operand := tc.checkExpr(un.Operand)
	if !operand.Known() {
		return types.None
	}
	result, ok := types.CheckUnary(un.Op, operand)
	if !ok {
		tc.report(diag.SemaInvalidOperands, id,
			"Type error: Cannot apply unary operator '%s' to type '%s'", un.Op, operand)
	}
	return result
}

// checkCall checks every argument first, then resolves a named callee. A
// wrong argument count is reported once and the per-argument comparison is
// skipped. The call has the method's return type even when arguments fail.
func (tc *typeChecker) checkCall(id ast.NodeID) types.Type {
	call, ok := tc.tree.Call(id)
	if !ok {
		return types.None
	}
	argTypes := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = tc.checkExpr(arg)
	}

	callee := tc.tree.Node(call.Callee)
	if callee == nil || callee.Kind != ast.KindIdent {
		if callee != nil {
			tc.checkExpr(call.Callee)
		}
		return types.None
	}

	name := callee.Value
	sym, found := tc.scopes.Lookup(name)
	tc.result.ExprTypes[call.Callee] = types.None
	switch {
	case !found:
		tc.report(diag.SemaUndefinedMethod, call.Callee, "Undefined method: '%s'", name)
		return types.None
	case sym.Kind != symbols.SymbolMethod:
		tc.report(diag.SemaNotAMethod, call.Callee, "'%s' is not a method", name)
		return types.None
	}
	tc.result.ExprTypes[call.Callee] = types.Function

	if len(argTypes) != len(sym.Params) {
		tc.report(diag.SemaArityMismatch, id,
			"Method '%s' expects %d arguments but got %d", name, len(sym.Params), len(argTypes))
		return sym.Type
	}
	for i, at := range argTypes {
		pt := sym.Params[i].Type
		if at.Known() && pt.Known() && !types.Assignable(at, pt) {
			tc.report(diag.SemaTypeMismatch, call.Args[i],
				"Type error: Argument %d of method '%s' expects type '%s' but got '%s'",
				i+1, name, pt, at)
		}
	}
	return sym.Type
}

// checkNew checks the constructor arguments and resolves the class name.
func (tc *typeChecker) checkNew(id ast.NodeID) types.Type {
	expr, ok := tc.tree.NewExpr(id)
	if !ok {
		return types.None
	}
	for _, arg := range expr.Args {
		tc.checkExpr(arg)
	}
	sym, found := tc.scopes.Lookup(expr.Class)
	if !found || sym.Kind != symbols.SymbolClass {
		tc.report(diag.SemaUndefinedClass, id, "Undefined class: '%s'", expr.Class)
		return types.None
	}
	return types.Type(expr.Class)
}
