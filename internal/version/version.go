// Package version holds the decaf build fingerprint.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Overridable at build time via -ldflags "-X decaf/internal/version.Version=...".
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with major, minor and patch in distinct colors.
// The pre-release suffix stays plain. Colors follow color.NoColor.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Fingerprint is the one-line form used by `decaf version`: the version,
// then the short commit and build date when known.
func Fingerprint() string {
	var sb strings.Builder
	sb.WriteString("decaf ")
	sb.WriteString(Colored())
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		sb.WriteString(" (" + commit)
		if BuildDate != "" {
			sb.WriteString(", " + BuildDate)
		}
		sb.WriteString(")")
	} else if BuildDate != "" {
		sb.WriteString(" (" + BuildDate + ")")
	}
	return sb.String()
}
