package sema

import (
	"testing"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/symbols"
	"decaf/internal/trace"
	"decaf/internal/types"
)

const sampleProgram = `package Test;
class Main {
  func main() int {
    int x = 10;
    if (x > 5) { x = x - 1; }
    return x;
  }
}
`

func TestSampleProgramChecksClean(t *testing.T) {
	res := check(t, sampleProgram)
	wantErrors(t, res)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", res.Diagnostics)
	}
}

func TestBlockScopedVariableInvisibleAfterBlock(t *testing.T) {
	res := check(t, `class M {
  func m() void {
    { int y = 1; }
    y = 2;
  }
}`)
	wantErrors(t, res, "Undefined variable: 'y'")
}

func TestUseBeforeDeclarationIsUndefined(t *testing.T) {
	res := check(t, `func f() { x = 1; int x = 2; x = 3; }`)
	wantErrors(t, res, "Undefined variable: 'x'")
}

func TestVariableCannotSeeItselfInInitializer(t *testing.T) {
	res := check(t, `int x = x;`)
	wantErrors(t, res, "Undefined variable: 'x'")
}

func TestParametersScopedToTheirFunction(t *testing.T) {
	res := check(t, `func f(int p) { p = 2; } func g() { p = 1; }`)
	wantErrors(t, res, "Undefined variable: 'p'")
}

func TestPromotionThroughArithmetic(t *testing.T) {
	// double is not spelled by the grammar, so build `double d = 1; int i = 2; i + d;` directly.
	b := ast.NewBuilder(16)
	sp := source.Span{}
	vdD := b.New(ast.KindVarDecl, "d", sp, 1, b.New(ast.KindType, "double", sp, 1), b.New(ast.KindIntLit, "1", sp, 1))
	vdI := b.New(ast.KindVarDecl, "i", sp, 1, b.New(ast.KindType, "int", sp, 1), b.New(ast.KindIntLit, "2", sp, 1))
	sum := b.New(ast.KindAdditive, "+", sp, 1, b.New(ast.KindIdent, "i", sp, 1), b.New(ast.KindIdent, "d", sp, 1))
	prog := b.New(ast.KindProgram, "", sp, 1, vdD, vdI, b.New(ast.KindExprStmt, "", sp, 1, sum))
	res := Check(b.Finish(prog), Options{})

	wantErrors(t, res)
	if got := res.ExprTypes[sum]; got != types.Double {
		t.Fatalf("int + double = %s, want double", got)
	}
}

func TestStringConcatenationAndBadAddition(t *testing.T) {
	tree := parse(t, `string s = "a"; s + 1; true + 1;`)
	res := Check(tree, Options{})
	wantErrors(t, res, "Type error: Cannot apply operator '+' to types 'bool' and 'int'")
	if got := res.ExprTypes[exprOf(t, tree, 0)]; got != types.String {
		t.Errorf("string + int = %s, want string", got)
	}
	if got := res.ExprTypes[exprOf(t, tree, 1)]; got != types.None {
		t.Errorf("bool + int = %s, want None", got)
	}
}

func TestFailedArithmeticDoesNotCascade(t *testing.T) {
	res := check(t, `int z = true + 1; int w = z * (true - 1);`)
	wantErrors(t, res,
		"Type error: Cannot apply operator '+' to types 'bool' and 'int'",
		"Type error: Cannot apply operator '-' to types 'bool' and 'int'",
	)
}

func TestPrecedenceDoesNotChangeTypes(t *testing.T) {
	tree := parse(t, `1 + 2 * 3; (1 + 2) * 3; 1 - 2 - 3;`)
	res := Check(tree, Options{})
	wantErrors(t, res)
	for i := 0; i < 3; i++ {
		if got := res.ExprTypes[exprOf(t, tree, i)]; got != types.Int {
			t.Errorf("expression %d typed %s, want int", i, got)
		}
	}
}

func TestArityMismatchReportedOnceArgumentsStillChecked(t *testing.T) {
	tree := parse(t, `func add(int a, int b) int { return a + b; }
add(1, "two", true);`)
	res := Check(tree, Options{})
	wantErrors(t, res, "Method 'add' expects 2 arguments but got 3")

	call, ok := tree.Call(exprOf(t, tree, 0))
	if !ok {
		t.Fatal("expression is not a call")
	}
	want := []types.Type{types.Int, types.String, types.Bool}
	for i, arg := range call.Args {
		if got, ok := res.ExprTypes[arg]; !ok || got != want[i] {
			t.Errorf("argument %d typed %q (recorded %v), want %s", i+1, got, ok, want[i])
		}
	}
	if got := res.ExprTypes[exprOf(t, tree, 0)]; got != types.Int {
		t.Errorf("call typed %s, want the declared return type int", got)
	}
}

func TestArityMismatchStillSurfacesArgumentErrors(t *testing.T) {
	res := check(t, `func one(int a) {} one(q, 1 && true);`)
	wantErrors(t, res,
		"Undefined variable: 'q'",
		"Type error: Cannot apply operator '&&' to types 'int' and 'bool'. Expected 'bool'",
		"Method 'one' expects 1 arguments but got 2",
	)
}

func TestErrorsAccumulate(t *testing.T) {
	res := check(t, `class M {
  func m() int {
    int x = "s";
    return "t";
  }
}`)
	wantErrors(t, res,
		"Type error: Cannot assign value of type 'string' to variable 'x' of type 'int'",
		"Type error: Function 'm' must return a value of type 'int', but got 'string'",
	)
}

func TestDiagnosticsForwardedToReporter(t *testing.T) {
	bag := diag.NewBag(16)
	res := Check(parse(t, `int a = "s"; b;`), Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 2 || len(res.Diagnostics) != 2 {
		t.Fatalf("bag has %d, result has %d diagnostics", bag.Len(), len(res.Diagnostics))
	}
	items := bag.Items()
	if items[0].Code != diag.SemaTypeMismatch || items[1].Code != diag.SemaUndefinedVariable {
		t.Fatalf("codes = %s, %s", items[0].Code.ID(), items[1].Code.ID())
	}
	if items[1].Primary.Len() != 1 {
		t.Errorf("undefined variable span covers %d bytes, want 1", items[1].Primary.Len())
	}
}

func TestRedefinitionIsWarningLaterWins(t *testing.T) {
	tree := parse(t, `int a = 1; string a = "s"; a + 1;`)
	res := Check(tree, Options{})
	wantErrors(t, res)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("want one warning, got %v", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Severity != diag.SevWarning || d.Code != diag.SemaRedefinition || len(d.Notes) != 1 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if got := res.ExprTypes[exprOf(t, tree, 0)]; got != types.String {
		t.Fatalf("later declaration should win, got %s", got)
	}
}

func TestShadowingInInnerScopeIsSilent(t *testing.T) {
	res := check(t, `func f(int a) { { string a = "s"; } a = 1; }`)
	wantErrors(t, res)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("shadowing produced %v", res.Diagnostics)
	}
}

func TestClassScopeIsFlat(t *testing.T) {
	res := check(t, `class A { func m() int { return 1; } }
class B { func n() int { return m(); } }`)
	wantErrors(t, res)
	for _, name := range []string{"A", "m", "B", "n"} {
		if _, ok := res.Globals.Lookup(name); !ok {
			t.Errorf("%q not in global scope", name)
		}
	}
	sym, _ := res.Globals.Lookup("A")
	if sym.Kind != symbols.SymbolClass {
		t.Errorf("A bound as %s", sym.Kind)
	}
}

func TestScopesBalanced(t *testing.T) {
	res := check(t, sampleProgram+`int after = 1;`)
	wantErrors(t, res)
	names := res.Globals.Names()
	want := []string{"Main", "main", "after"}
	if len(names) != len(want) {
		t.Fatalf("global names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("global names = %v, want %v", names, want)
		}
	}
}

func TestUnhandledPlacementPanics(t *testing.T) {
	b := ast.NewBuilder(4)
	param := b.New(ast.KindParam, "p", source.Span{}, 1, b.New(ast.KindType, "int", source.Span{}, 1))
	prog := b.New(ast.KindProgram, "", source.Span{}, 1, param)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a parameter at statement position")
		}
	}()
	Check(b.Finish(prog), Options{})
}

func TestCheckEmitsTraceSpans(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	Check(parse(t, sampleProgram), Options{Tracer: ring})
	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin {
			names = append(names, ev.Name)
		}
	}
	want := []string{"check", "class:Main", "func:main"}
	if len(names) != len(want) {
		t.Fatalf("spans = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("spans = %v, want %v", names, want)
		}
	}
}

func TestNilTreeIsOK(t *testing.T) {
	res := Check(nil, Options{})
	if !res.OK || len(res.Errors) != 0 {
		t.Fatalf("nil tree: %+v", res)
	}
}
