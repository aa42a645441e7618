package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decaf/internal/diagfmt"
	"decaf/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.dcf",
	Short: "Tokenize a decaf source file",
	Long:  `Tokenize breaks a decaf source file into the tokens the parser consumes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], global.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Err != nil {
		opts, err := global.prettyOpts(cmd, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		return errCheckFailed
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
}
