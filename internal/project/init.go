package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SampleProgram is written by Init as the project's entry file.
const SampleProgram = `package Test;

class Main {
  func main() int {
    int x = 10;
    if (x > 5) { x = x - 1; }
    return x;
  }
}
`

// Init creates decaf.toml and a sample main file in dir. Existing files are
// never overwritten.
func Init(dir, name string) ([]string, error) {
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		name = filepath.Base(abs)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	cfg := DefaultConfig(name)
	manifest, err := Encode(cfg)
	if err != nil {
		return nil, err
	}
	files := []struct {
		path    string
		content []byte
	}{
		{filepath.Join(dir, ManifestName), manifest},
		{filepath.Join(dir, cfg.Check.Main), []byte(SampleProgram)},
	}
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			return nil, fmt.Errorf("%s already exists", f.path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	created := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(f.path, f.content, 0o644); err != nil {
			return created, err
		}
		created = append(created, f.path)
	}
	return created, nil
}
