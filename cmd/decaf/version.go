package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"decaf/internal/version"
)

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var (
	versionFormat string
	versionFull   bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "show commit message and every recorded bit of build metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show decaf build fingerprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "pretty":
			colored, err := useColor(cmd, os.Stdout, "")
			if err != nil {
				return err
			}
			color.NoColor = !colored
			renderVersionPretty(cmd.OutOrStdout())
			return nil
		case "json":
			return renderVersionJSON(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionPretty(out io.Writer) {
	fmt.Fprintln(out, version.Fingerprint())
	if versionFull {
		fmt.Fprintf(out, "commit:  %s\n", valueOrUnknown(version.GitCommit))
		fmt.Fprintf(out, "message: %s\n", valueOrUnknown(version.GitMessage))
		fmt.Fprintf(out, "built:   %s\n", valueOrUnknown(version.BuildDate))
	}
}

func renderVersionJSON(out io.Writer) error {
	payload := versionPayload{
		Tool:      "decaf",
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildDate: version.BuildDate,
	}
	if versionFull {
		payload.GitMessage = version.GitMessage
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
