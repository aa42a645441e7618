package driver

import (
	"os"
	"path/filepath"
	"testing"
)

const badProgram = `class Main {
  func main() int {
    int x = "s";
    return y;
  }
}
`

var badErrors = []string{
	"Type error: Cannot assign value of type 'string' to variable 'x' of type 'int'",
	"Undefined variable: 'y'",
	"Type error: Function 'main' must return a value of type 'int'",
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
