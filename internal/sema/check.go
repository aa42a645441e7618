package sema

import (
	"fmt"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/symbols"
	"decaf/internal/trace"
	"decaf/internal/types"
)

// Options configure a semantic pass over one tree.
type Options struct {
	// Reporter receives every diagnostic as it is found. May be nil.
	Reporter diag.Reporter
	Tracer   trace.Tracer
	// ParentSpan links the pass's trace span to the caller's.
	ParentSpan uint64
}

// Result stores what the checker learned about the tree.
type Result struct {
	// OK is true when no error-severity diagnostic was produced.
	OK bool
	// Errors holds the error messages in discovery order.
	Errors []string
	// Diagnostics holds every diagnostic, warnings included, in discovery order.
	Diagnostics []diag.Diagnostic
	// ExprTypes maps each checked expression to its inferred type.
	ExprTypes map[ast.NodeID]types.Type
	// Globals is the outermost scope as it stood when the walk finished.
	Globals *symbols.Scope
}

// Check type-checks tree and returns the accumulated diagnostics.
func Check(tree *ast.Tree, opts Options) Result {
	res := Result{
		ExprTypes: make(map[ast.NodeID]types.Type),
	}
	out := &collector{next: opts.Reporter}
	tc := typeChecker{
		tree:     tree,
		scopes:   symbols.NewScopeStack(),
		reporter: out,
		tracer:   opts.Tracer,
		result:   &res,
	}
	if tc.tracer == nil {
		tc.tracer = trace.Nop
	}

	span := trace.Begin(tc.tracer, trace.ScopePass, "check", opts.ParentSpan)
	tc.span = span.ID()
	if tree != nil && tree.Root.IsValid() {
		tc.checkNode(tree.Root)
	}
	if depth := tc.scopes.Depth(); depth != 1 {
		panic(fmt.Sprintf("sema: %d scopes left open after the walk", depth-1))
	}

	res.Diagnostics = out.items
	for _, d := range out.items {
		if d.Severity >= diag.SevError {
			res.Errors = append(res.Errors, d.Message)
		}
	}
	res.OK = len(res.Errors) == 0
	res.Globals = tc.scopes.Global()
	span.WithExtra("errors", fmt.Sprint(len(res.Errors))).
		WithExtra("globals", fmt.Sprint(len(res.Globals.Names()))).
		End("")
	return res
}

// collector is the pass's explicit diagnostic accumulator. It keeps its own
// ordered copy and forwards to the caller's reporter.
type collector struct {
	items []diag.Diagnostic
	next  diag.Reporter
}

func (c *collector) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	d := diag.New(sev, code, primary, msg)
	d.Notes = notes
	c.items = append(c.items, d)
	if c.next != nil {
		c.next.Report(code, sev, primary, msg, notes)
	}
}

type typeChecker struct {
	tree     *ast.Tree
	scopes   *symbols.ScopeStack
	reporter diag.Reporter
	tracer   trace.Tracer
	span     uint64
	result   *Result

	currentFunc  *symbols.Symbol
	currentClass string
}

func (tc *typeChecker) report(code diag.Code, id ast.NodeID, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if b := diag.ReportError(tc.reporter, code, tc.spanOf(id), msg); b != nil {
		b.Emit()
	}
}

func (tc *typeChecker) spanOf(id ast.NodeID) source.Span {
	if n := tc.tree.Node(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

// define adds sym to the innermost scope. Shadowing an outer name is fine;
// replacing a name in the same scope is flagged and the new entry wins.
func (tc *typeChecker) define(sym *symbols.Symbol) {
	prev := tc.scopes.Define(sym)
	if prev == nil {
		return
	}
	msg := fmt.Sprintf("'%s' redefined in the same scope; the earlier %s is replaced", sym.Name, prev.Kind)
	b := diag.ReportWarning(tc.reporter, diag.SemaRedefinition, sym.Span, msg)
	if prev.Span != (source.Span{}) {
		b = b.WithNote(prev.Span, "previous declaration here")
	}
	b.Emit()
}
