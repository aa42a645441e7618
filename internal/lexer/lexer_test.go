package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/source"
	"decaf/internal/token"
)

func tokenize(t *testing.T, input string) ([]token.Token, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dcf", []byte(input)))
	bag := diag.NewBag(10)
	toks, err := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag, err
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectKinds(t *testing.T, input string, expected ...token.Kind) {
	t.Helper()
	toks, _, err := tokenize(t, input)
	if err != nil {
		t.Fatalf("tokenize %q: %v", input, err)
	}
	got := kindsOf(toks)
	if len(got) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %s", len(expected), len(got), tokensToString(toks))
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("token %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"package", token.KwPackage},
		{"func", token.KwFunc},
		{"int", token.KwInt},
		{"string", token.KwString},
		{"bool", token.KwBool},
		{"return", token.KwReturn},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"while", token.KwWhile},
		{"for", token.KwFor},
		{"class", token.KwClass},
		{"new", token.KwNew},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"null", token.KwNull},
		{"this", token.KwThis},
		{"void", token.KwVoid},
		{"integer", token.Ident},
		{"classy", token.Ident},
		{"_x1", token.Ident},
		{"If", token.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, _, err := tokenize(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if toks[0].Kind != tt.kind || toks[0].Text != tt.input {
				t.Fatalf("got %v %q, want %v %q", toks[0].Kind, toks[0].Text, tt.kind, tt.input)
			}
		})
	}
}

func TestLongestMatchOperators(t *testing.T) {
	expectKinds(t, "== != <= >= && ||",
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.AndAnd, token.OrOr)
	expectKinds(t, "a<=b", token.Ident, token.LtEq, token.Ident)
	expectKinds(t, "===", token.EqEq, token.Assign)
	expectKinds(t, "!!=", token.Bang, token.BangEq)
	expectKinds(t, "= + - * / % < > ! . : @ ? { } ( ) [ ] ; ,",
		token.Assign, token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Lt, token.Gt, token.Bang, token.Dot, token.Colon, token.At, token.Question,
		token.LBrace, token.RBrace, token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.Semicolon, token.Comma)
}

func TestLiterals(t *testing.T) {
	toks, _, err := tokenize(t, `x = 42 + "hi there";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[2].Kind != token.IntLit || toks[2].Text != "42" {
		t.Fatalf("int literal: %v", toks[2])
	}
	if toks[4].Kind != token.StringLit || toks[4].Text != `"hi there"` {
		t.Fatalf("string literal: %v", toks[4])
	}
	expectKinds(t, `"a""b"`, token.StringLit, token.StringLit)
	expectKinds(t, "12ab", token.IntLit, token.Ident)
}

func TestCommentsAndWhitespaceAreStripped(t *testing.T) {
	expectKinds(t, "a // comment ; {\n\t b / c",
		token.Ident, token.Ident, token.Slash, token.Ident)
	expectKinds(t, "// only a comment")
	expectKinds(t, "")
}

func TestLineNumbersAndSpans(t *testing.T) {
	input := "package P;\n\n// c\nint x = 1;"
	toks, _, err := tokenize(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Line != 1 || toks[3].Line != 4 {
		t.Fatalf("lines: %d %d", toks[0].Line, toks[3].Line)
	}
	for _, tok := range toks {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span %v covers %q, text is %q", tok.Span, got, tok.Text)
		}
	}
	last := toks[len(toks)-1]
	if last.Kind != token.EOF || last.Line != 4 {
		t.Fatalf("expected EOF on line 4, got %v line %d", last.Kind, last.Line)
	}
}

func TestUnexpectedCharacterIsFatal(t *testing.T) {
	toks, bag, err := tokenize(t, "int x = 1;\nx = x # 2;")
	if toks != nil {
		t.Fatalf("expected no tokens on failure")
	}
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %v", err)
	}
	if lexErr.Line != 2 || lexErr.Char != '#' {
		t.Fatalf("got line %d char %q", lexErr.Line, lexErr.Char)
	}
	if err.Error() != "line 2: Unexpected character: '#'" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected one LexUnknownChar diagnostic, got %d", bag.Len())
	}
}

func TestUnterminatedStringFailsAtQuote(t *testing.T) {
	_, _, err := tokenize(t, "x = \"abc\ny\";")
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %v", err)
	}
	if lexErr.Char != '"' || lexErr.Line != 1 || lexErr.Span.Start != 4 {
		t.Fatalf("got %+v", lexErr)
	}
}

func TestSingleAmpersandIsAnError(t *testing.T) {
	_, _, err := tokenize(t, "a & b")
	if err == nil {
		t.Fatalf("expected error for lone '&'")
	}
}

func TestNextIsStickyAfterEOFAndError(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("t.dcf", []byte("a"))), lexer.Options{})
	lx.Next()
	for range 2 {
		if tok, err := lx.Next(); err != nil || tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v %v", tok.Kind, err)
		}
	}

	lx = lexer.New(fs.Get(fs.AddVirtual("u.dcf", []byte("$"))), lexer.Options{})
	_, first := lx.Next()
	_, second := lx.Next()
	if first == nil || first != second {
		t.Fatalf("error should repeat: %v %v", first, second)
	}
}
