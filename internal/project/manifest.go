// Package project locates and validates the decaf.toml manifest.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file searched for by FindManifest.
const ManifestName = "decaf.toml"

// SourceExt is the extension of decaf source files.
const SourceExt = ".dcf"

// ErrNoManifest is returned by LoadManifest when no decaf.toml is found.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// Manifest is a loaded decaf.toml together with its location.
type Manifest struct {
	Path   string // absolute path to decaf.toml
	Root   string // directory holding decaf.toml
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type CheckConfig struct {
	Main           string `toml:"main"` // file or directory, relative to Root
	MaxDiagnostics int    `toml:"max_diagnostics,omitempty"`
	Color          string `toml:"color,omitempty"` // auto|on|off
}

const defaultMaxDiagnostics = 100

// DefaultConfig is what `decaf init` writes.
func DefaultConfig(name string) Config {
	return Config{
		Package: PackageConfig{Name: name},
		Check: CheckConfig{
			Main:           "main" + SourceExt,
			MaxDiagnostics: defaultMaxDiagnostics,
			Color:          "auto",
		},
	}
}

// FindManifest walks up from startDir to locate decaf.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest finds and validates the manifest governing startDir.
func LoadManifest(startDir string) (*Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("check") {
		return Config{}, fmt.Errorf("%s: missing [check]", path)
	}
	if !meta.IsDefined("check", "main") || strings.TrimSpace(cfg.Check.Main) == "" {
		return Config{}, fmt.Errorf("%s: missing [check].main", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [check].max_diagnostics must not be negative", path)
	}
	if cfg.Check.MaxDiagnostics == 0 {
		cfg.Check.MaxDiagnostics = defaultMaxDiagnostics
	}
	switch cfg.Check.Color {
	case "":
		cfg.Check.Color = "auto"
	case "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: [check].color must be auto, on or off, got %q", path, cfg.Check.Color)
	}
	return cfg, nil
}

// Target resolves [check].main against the manifest root. isDir reports
// whether it names a directory to be checked file by file.
func (m *Manifest) Target() (path string, isDir bool, err error) {
	mainRel := strings.TrimSpace(m.Config.Check.Main)
	path = filepath.Join(m.Root, filepath.FromSlash(mainRel))
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("%s: [check].main path does not exist: %s", m.Path, path)
		}
		return "", false, fmt.Errorf("%s: failed to stat [check].main: %w", m.Path, err)
	}
	if info.IsDir() {
		return path, true, nil
	}
	if filepath.Ext(path) != SourceExt {
		return "", false, fmt.Errorf("%s: [check].main must be a %s file or directory", m.Path, SourceExt)
	}
	return path, false, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
