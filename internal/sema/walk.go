package sema

import (
	"fmt"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/symbols"
	"decaf/internal/trace"
	"decaf/internal/types"
)

// checkNode dispatches on every node kind that may appear at declaration or
// statement position. Expression kinds are evaluated for their diagnostics
// and their type is discarded.
func (tc *typeChecker) checkNode(id ast.NodeID) {
	n := tc.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindProgram, ast.KindMethodBody:
		for _, child := range n.Children {
			tc.checkNode(child)
		}
	case ast.KindPackageDecl:
		// nothing to check
	case ast.KindClassDecl:
		tc.checkClass(id)
	case ast.KindFuncDecl, ast.KindMethodDecl:
		tc.checkFunc(id)
	case ast.KindBlock:
		tc.scopes.Enter(symbols.ScopeBlock, id)
		for _, child := range n.Children {
			tc.checkNode(child)
		}
		tc.scopes.Exit()
	case ast.KindVarDecl:
		tc.checkVarDecl(id)
	case ast.KindIfStmt:
		tc.checkIf(id)
	case ast.KindWhileStmt:
		tc.checkWhile(id)
	case ast.KindForStmt:
		tc.checkFor(id)
	case ast.KindReturnStmt:
		tc.checkReturn(id)
	case ast.KindExprStmt:
		tc.checkExpr(tc.tree.Child(id, 0))
	case ast.KindParamList, ast.KindParam, ast.KindType:
		panic(fmt.Sprintf("sema: %s checked outside its declaration", n.Kind))
	case ast.KindInvalid:
		panic("sema: invalid node in tree")
	default:
		if !n.Kind.IsExpr() {
			panic(fmt.Sprintf("sema: unhandled node kind %s", n.Kind))
		}
		tc.checkExpr(id)
	}
}

// checkClass binds the class in the enclosing scope. Its methods are checked
// in that same scope: classes do not get a namespace of their own.
func (tc *typeChecker) checkClass(id ast.NodeID) {
	cls, ok := tc.tree.ClassDecl(id)
	if !ok {
		return
	}
	span := trace.Begin(tc.tracer, trace.ScopeModule, "class:"+cls.Name, tc.span)
	defer span.End("")

	tc.define(&symbols.Symbol{
		Kind: symbols.SymbolClass,
		Name: cls.Name,
		Type: types.Type(cls.Name),
		Decl: id,
		Span: tc.spanOf(id),
	})
	prevClass := tc.currentClass
	tc.currentClass = cls.Name
	for _, m := range cls.Methods {
		tc.checkNode(m)
	}
	tc.currentClass = prevClass
}

// checkFunc registers the method in the current scope before its body is
// checked, so recursion resolves, then checks the body under a fresh scope
// holding the parameters.
func (tc *typeChecker) checkFunc(id ast.NodeID) {
	fn, ok := tc.tree.FuncDecl(id)
	if !ok {
		return
	}
	span := trace.Begin(tc.tracer, trace.ScopeModule, "func:"+fn.Name, tc.span)
	defer span.End("")

	ret := types.Void
	if fn.ReturnType.IsValid() {
		ret = types.FromName(tc.tree.TypeName(fn.ReturnType))
	}
	sym := &symbols.Symbol{
		Kind: symbols.SymbolMethod,
		Name: fn.Name,
		Type: ret,
		Decl: id,
		Span: tc.spanOf(id),
	}
	params := make([]*symbols.Symbol, 0, len(fn.Params))
	for _, pid := range fn.Params {
		p, ok := tc.tree.Param(pid)
		if !ok {
			continue
		}
		pt := types.FromName(tc.tree.TypeName(p.Type))
		sym.Params = append(sym.Params, symbols.Param{Name: p.Name, Type: pt})
		params = append(params, &symbols.Symbol{
			Kind: symbols.SymbolVariable,
			Name: p.Name,
			Type: pt,
			Decl: pid,
			Span: tc.spanOf(pid),
		})
	}
	tc.define(sym)

	prevFunc := tc.currentFunc
	tc.currentFunc = sym
	tc.scopes.Enter(symbols.ScopeFunction, id)
	for _, p := range params {
		tc.define(p)
	}
	tc.checkNode(fn.Body)
	tc.scopes.Exit()
	tc.currentFunc = prevFunc
}

// checkVarDecl checks the initializer before the name is bound, so a
// variable cannot see itself. The name is bound with its declared type even
// when the initializer does not fit.
func (tc *typeChecker) checkVarDecl(id ast.NodeID) {
	vd, ok := tc.tree.VarDecl(id)
	if !ok {
		return
	}
	declared := types.FromName(tc.tree.TypeName(vd.Type))
	if vd.Init.IsValid() {
		initType := tc.checkExpr(vd.Init)
		if initType.Known() && !types.Assignable(initType, declared) {
			tc.report(diag.SemaTypeMismatch, vd.Init,
				"Type error: Cannot assign value of type '%s' to variable '%s' of type '%s'",
				initType, vd.Name, declared)
		}
	}
	tc.define(&symbols.Symbol{
		Kind: symbols.SymbolVariable,
		Name: vd.Name,
		Type: declared,
		Decl: id,
		Span: tc.spanOf(id),
	})
}

func (tc *typeChecker) checkIf(id ast.NodeID) {
	stmt, ok := tc.tree.IfStmt(id)
	if !ok {
		return
	}
	tc.checkCondition(stmt.Cond, "If condition", false)
	tc.checkNode(stmt.Then)
	if stmt.Else.IsValid() {
		tc.checkNode(stmt.Else)
	}
}

func (tc *typeChecker) checkWhile(id ast.NodeID) {
	stmt, ok := tc.tree.WhileStmt(id)
	if !ok {
		return
	}
	tc.checkCondition(stmt.Cond, "While condition", false)
	tc.checkNode(stmt.Body)
}

// checkFor checks each present clause in source order.
func (tc *typeChecker) checkFor(id ast.NodeID) {
	stmt, ok := tc.tree.ForStmt(id)
	if !ok {
		return
	}
	if stmt.Init.IsValid() {
		tc.checkExpr(stmt.Init)
	}
	if stmt.Cond.IsValid() {
		tc.checkCondition(stmt.Cond, "For loop condition", true)
	}
	if stmt.Update.IsValid() {
		tc.checkExpr(stmt.Update)
	}
	tc.checkNode(stmt.Body)
}

// checkCondition requires a bool condition. Only for loops let a condition
// with no inferred type through; if and while report it as 'None'.
func (tc *typeChecker) checkCondition(cond ast.NodeID, what string, allowUnknown bool) {
	t := tc.checkExpr(cond)
	if t == types.Bool || (allowUnknown && !t.Known()) {
		return
	}
	tc.report(diag.SemaInvalidCondition, cond,
		"Type error: %s must be of type 'bool', but got '%s'", what, t)
}

// checkReturn compares the returned value with the enclosing function's
// return type. Outside a function there is nothing to compare against.
func (tc *typeChecker) checkReturn(id ast.NodeID) {
	stmt, ok := tc.tree.ReturnStmt(id)
	if !ok {
		return
	}
	valueType := types.None
	if stmt.Value.IsValid() {
		valueType = tc.checkExpr(stmt.Value)
	}
	fn := tc.currentFunc
	if fn == nil {
		return
	}
	switch {
	case !valueType.Known():
		// A bare return and a value with no inferred type read the same.
		if fn.Type != types.Void {
			tc.report(diag.SemaReturnMismatch, id,
				"Type error: Function '%s' must return a value of type '%s'", fn.Name, fn.Type)
		}
	case !types.Assignable(valueType, fn.Type):
		tc.report(diag.SemaReturnMismatch, stmt.Value,
			"Type error: Function '%s' must return a value of type '%s', but got '%s'",
			fn.Name, fn.Type, valueType)
	}
}
