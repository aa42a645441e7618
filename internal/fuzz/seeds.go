package fuzztests

import (
	"testing"

	"decaf/internal/project"
)

const maxFuzzInput = 1 << 16

var languageSeeds = []string{
	"",
	project.SampleProgram,
	"package P; int x = 1",
	"class A { func f(int a, bool b) string { return \"s\" + a; } }",
	"func helper() { for (;;) { } }",
	"func g(int n) int { while (n > 0) { n = n - 1; } return n; }",
	"x = y = 3; a.b[c](d); new T(); this; null;",
	"if (a) if (b) c = 1; else c = 2;",
	"1 + 2 * 3 - -4 / 5 % 6 < 7 == !true && false || x",
	"class C { func m() void { int x; { int x = 2; } } }",
	"// comment only\n",
	"\"unterminated",
	"int x = #;",
	"{ { { { } } } }",
}

func addSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
