package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"decaf/internal/version"
)

// errCheckFailed signals that diagnostics were already printed and the
// process should exit non-zero without further output.
var errCheckFailed = errors.New("check failed")

var rootCmd = &cobra.Command{
	Use:           "decaf",
	Short:         "Decaf front end: tokenizer, parser and type checker",
	Long:          `decaf tokenizes, parses and type-checks .dcf source files and reports every type error it finds`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupProfiling(cmd); err != nil {
			return err
		}
		return setupTracing(cmd)
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "", "trace storage (stream|ring|both); default depends on level")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.String("memprofile", "", "write a heap profile to this file on exit")
	flags.String("exectrace", "", "write a Go execution trace to this file")

	err := rootCmd.Execute()
	closeTracing(err)
	stopProfiling()
	if err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "decaf: %v\n", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for output going to f. manifestColor applies
// when the flag was left at its default.
func useColor(cmd *cobra.Command, f *os.File, manifestColor string) (bool, error) {
	flag := cmd.Root().PersistentFlags().Lookup("color")
	mode := flag.Value.String()
	if !flag.Changed && manifestColor != "" {
		mode = manifestColor
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
