package version

import (
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate, origNoColor := Version, GitCommit, BuildDate, color.NoColor
	Version, GitCommit, BuildDate = v, commit, date
	color.NoColor = true
	t.Cleanup(func() {
		Version, GitCommit, BuildDate, color.NoColor = origVersion, origCommit, origDate, origNoColor
	})
}

func TestDefaultVersionIsSet(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
}

func TestColoredWithoutColor(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.0.0-beta.1", "1.0.0-beta.1"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version, "", "")
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		commit, date string
		want         string
	}{
		{"", "", "decaf 1.2.3"},
		{"1234567890abcdef1234", "", "decaf 1.2.3 (1234567890ab)"},
		{"abc123", "2024-01-15", "decaf 1.2.3 (abc123, 2024-01-15)"},
		{"", "2024-01-15", "decaf 1.2.3 (2024-01-15)"},
	}
	for _, tt := range tests {
		withVersion(t, "1.2.3", tt.commit, tt.date)
		if got := Fingerprint(); got != tt.want {
			t.Errorf("Fingerprint() = %q, want %q", got, tt.want)
		}
	}
}
