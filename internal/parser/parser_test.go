package parser

import (
	"strings"
	"testing"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/token"
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

func TestSampleProgramOutline(t *testing.T) {
	tree := mustParse(t, sampleProgram)
	want := strings.Join([]string{
		"Program",
		"  PackageDecl: Test",
		"  ClassDecl: Main",
		"    MethodDecl: main",
		"      Params",
		"      Type: int",
		"      MethodBody",
		"        VarDecl: x",
		"          Type: int",
		"          IntLiteral: 10",
		"        IfStmt",
		"          Relational: >",
		"            Identifier: x",
		"            IntLiteral: 5",
		"          Block",
		"            ExprStmt",
		"              Assignment: =",
		"                Identifier: x",
		"                Additive: -",
		"                  Identifier: x",
		"                  IntLiteral: 1",
		"        ReturnStmt",
		"          Identifier: x",
		"",
	}, "\n")
	if got := tree.Outline(tree.Root); got != want {
		t.Fatalf("outline mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	toks := lex(t, sampleProgram)
	first, err := ParseTokens(toks, Options{})
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseTokens(toks, Options{})
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !ast.Equal(first, first.Root, second, second.Root) {
		t.Fatalf("two parses of the same tokens differ")
	}
}

func TestParseConsumesEveryToken(t *testing.T) {
	toks := lex(t, sampleProgram)
	p := New(toks, Options{})
	tree, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rest := p.Remaining(); len(rest) != 0 {
		t.Fatalf("unconsumed tokens: %v", rest)
	}
	if tree.Node(tree.Root).Span.End != toks[len(toks)-2].Span.End {
		t.Fatalf("program span does not reach the last token")
	}
}

func TestTokensWithoutEOFAreAccepted(t *testing.T) {
	toks := lex(t, "x = 1;")
	toks = toks[:len(toks)-1]
	if _, err := ParseTokens(toks, Options{}); err != nil {
		t.Fatalf("parse without EOF: %v", err)
	}
	if len(toks) != 4 || toks[len(toks)-1].Kind != token.Semicolon {
		t.Fatalf("caller slice was modified")
	}
}

func TestTokensAfterEOFAreTrailing(t *testing.T) {
	toks := lex(t, "x = 1;")
	toks = append(toks, token.Token{Kind: token.Ident, Text: "y", Line: 2}, token.Token{Kind: token.EOF, Line: 2})
	_, err := ParseTokens(toks, Options{})
	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if synErr.Code != diag.SynTrailingTokens || synErr.Found.Text != "y" {
		t.Fatalf("expected trailing-token error, got %s", synErr.Code.ID())
	}
}

func TestVarDeclSemicolonIsOptional(t *testing.T) {
	tree := mustParse(t, "int x = 1 int y string s = \"a\"; bool b")
	prog := tree.Node(tree.Root)
	if len(prog.Children) != 4 {
		t.Fatalf("expected 4 declarations, got %d", len(prog.Children))
	}
	decl, ok := tree.VarDecl(prog.Children[1])
	if !ok || decl.Name != "y" || decl.Init.IsValid() || tree.TypeName(decl.Type) != "int" {
		t.Fatalf("unexpected second declaration: %+v", decl)
	}
}

func TestOtherStatementsRequireSemicolon(t *testing.T) {
	for _, src := range []string{"x = 1", "return 1", "f() g();", "class C { func m() void { return 1 } }"} {
		synErr := mustFail(t, src)
		if synErr.Expected != "';'" {
			t.Errorf("%q: expected ';' error, got %v", src, synErr)
		}
	}
}

func TestReturnTypeOptionalOnlyForTopLevelFunctions(t *testing.T) {
	tree := mustParse(t, "func f(int a, string b) { return; }")
	fn, ok := tree.FuncDecl(tree.Child(tree.Root, 0))
	if !ok || fn.IsMethod || fn.ReturnType.IsValid() || len(fn.Params) != 2 {
		t.Fatalf("unexpected function: %+v", fn)
	}
	if p, _ := tree.Param(fn.Params[1]); p.Name != "b" || tree.TypeName(p.Type) != "string" {
		t.Fatalf("unexpected second param: %+v", p)
	}

	tree = mustParse(t, "func g() bool { return true; }")
	fn, _ = tree.FuncDecl(tree.Child(tree.Root, 0))
	if tree.TypeName(fn.ReturnType) != "bool" {
		t.Fatalf("top-level return type lost")
	}

	synErr := mustFail(t, "class C { func m() { } }")
	if synErr.Code != diag.SynExpectType || synErr.Found.Kind != token.LBrace {
		t.Fatalf("method without return type: %v", synErr)
	}
}

func TestClassBodyOnlyHoldsMethods(t *testing.T) {
	synErr := mustFail(t, "class C { int x; }")
	if synErr.Expected != "'}'" || synErr.Found.Kind != token.KwInt {
		t.Fatalf("unexpected error: %v", synErr)
	}
}

func TestControlFlowShapes(t *testing.T) {
	tree := mustParse(t, `
for (i = 0; i < 10; i = i + 1) x = x + i;
for (;;) { }
while (true) if (a) b = 1; else if (c) b = 2; else b = 3;
`)
	prog := tree.Node(tree.Root)

	full, ok := tree.ForStmt(prog.Children[0])
	if !ok || !full.Init.IsValid() || !full.Cond.IsValid() || !full.Update.IsValid() {
		t.Fatalf("for clauses missing: %+v", full)
	}
	if tree.Kind(full.Body) != ast.KindExprStmt {
		t.Fatalf("for body kind %v", tree.Kind(full.Body))
	}

	empty, _ := tree.ForStmt(prog.Children[1])
	if empty.Init.IsValid() || empty.Cond.IsValid() || empty.Update.IsValid() {
		t.Fatalf("empty for clauses should be absent: %+v", empty)
	}

	loop, _ := tree.WhileStmt(prog.Children[2])
	outer, ok := tree.IfStmt(loop.Body)
	if !ok {
		t.Fatalf("while body is not an if")
	}
	inner, ok := tree.IfStmt(outer.Else)
	if !ok || !inner.Else.IsValid() {
		t.Fatalf("else-if chain not nested")
	}
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	tree := mustParse(t, "if (a) if (b) x = 1; else x = 2;")
	outer, _ := tree.IfStmt(tree.Child(tree.Root, 0))
	if outer.Else.IsValid() {
		t.Fatalf("else attached to the outer if")
	}
	inner, _ := tree.IfStmt(outer.Then)
	if !inner.Else.IsValid() {
		t.Fatalf("else missing on the inner if")
	}
}

func TestSyntaxErrorContext(t *testing.T) {
	synErr := mustFail(t, "int a = 1;\nx = 1 + ;\ny = 2;")
	if synErr.Line != 2 || synErr.Expected != "expression" || synErr.Found.Kind != token.Semicolon {
		t.Fatalf("unexpected error: %+v", synErr)
	}
	if got := synErr.ContextString(); got != "1, +, [;], y, =" {
		t.Fatalf("context = %q", got)
	}
	want := "line 2: expected expression but found ';' (context: 1, +, [;], y, =)"
	if synErr.Error() != want {
		t.Fatalf("Error() = %q, want %q", synErr.Error(), want)
	}
}

func TestSyntaxErrorContextAtEdges(t *testing.T) {
	synErr := mustFail(t, "{")
	if synErr.Found.Kind != token.EOF || synErr.Expected != "'}'" {
		t.Fatalf("unexpected error: %v", synErr)
	}
	if got := synErr.ContextString(); got != "{, [EOF]" {
		t.Fatalf("context = %q", got)
	}

	synErr = mustFail(t, ") x")
	if got := synErr.ContextString(); got != "[)], x, EOF" {
		t.Fatalf("context = %q", got)
	}
}

func TestPackageMustComeFirst(t *testing.T) {
	synErr := mustFail(t, "int x;\npackage P;")
	if synErr.Expected != "expression" || synErr.Found.Kind != token.KwPackage {
		t.Fatalf("unexpected error: %v", synErr)
	}
	mustFail(t, "package ;")
}

func TestEmptyProgram(t *testing.T) {
	tree := mustParse(t, "// nothing here\n")
	if n := tree.Node(tree.Root); n.Kind != ast.KindProgram || len(n.Children) != 0 {
		t.Fatalf("unexpected empty program: %+v", n)
	}
}

func TestVoidDoesNotStartDeclaration(t *testing.T) {
	synErr := mustFail(t, "void x;")
	if synErr.Code != diag.SynExpectExpression {
		t.Fatalf("expected expression error, got %v", synErr)
	}
}
