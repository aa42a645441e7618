package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.dcf", []byte("int x = 1;"), 0)
	id2 := fs.Add("main.dcf", []byte("int x = 2;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("main.dcf")
	if !ok || latest != id2 {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", id2, latest, ok)
	}
	if got := string(fs.Get(id1).Content); got != "int x = 1;" {
		t.Errorf("old version lost, got %q", got)
	}
}

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.dcf", []byte("\xEF\xBB\xBFa\r\nb\n"))
	f := fs.Get(id)

	if string(f.Content) != "a\nb\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileVirtual == 0 || f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("missing flags: %b", f.Flags)
	}
	want := []uint32{1, 3}
	if len(f.LineIdx) != len(want) || f.LineIdx[0] != want[0] || f.LineIdx[1] != want[1] {
		t.Errorf("expected LineIdx %v, got %v", want, f.LineIdx)
	}
}

func TestNormalizeNFC(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		wantFlag bool
	}{
		// "e" + combining acute accent composes into a single rune.
		{"decomposed", "\"e\u0301\"", "\"\u00e9\"", true},
		{"already composed", "\"\u00e9\"", "\"\u00e9\"", false},
		{"ascii", "int x = 1;", "int x = 1;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, flags := Normalize([]byte(tt.in))
			if string(content) != tt.want {
				t.Fatalf("got %q, want %q", content, tt.want)
			}
			if got := flags&FileNormalizedNFC != 0; got != tt.wantFlag {
				t.Errorf("FileNormalizedNFC = %v, want %v", got, tt.wantFlag)
			}
		})
	}
}

func TestResolveAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.dcf", []byte("package Test;\nclass Main {\n}\n"))
	f := fs.Get(id)

	start, end := fs.Resolve(Span{File: id, Start: 14, End: 19})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("expected 2:1, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Errorf("expected 2:6, got %d:%d", end.Line, end.Col)
	}
	if got := f.GetLine(2); got != "class Main {" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine past end = %q", got)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.dcf")
	if err := os.WriteFile(path, []byte("int a = 1;\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int a = 1;\n" {
		t.Errorf("unexpected content %q", f.Content)
	}
	if got := f.FormatPath("relative", fs.BaseDir()); got != "prog.dcf" {
		t.Errorf("relative path = %q", got)
	}
}
