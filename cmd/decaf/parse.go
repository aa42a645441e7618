package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decaf/internal/diagfmt"
	"decaf/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.dcf | --expr EXPR",
	Short: "Parse a decaf source file and print its syntax tree",
	Long: `Parse builds the syntax tree of a decaf program and prints it as an
indented outline or as JSON. With --expr, a single expression is parsed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "outline", "output format (outline|json)")
	parseCmd.Flags().String("expr", "", "parse this expression instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "outline" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	useExpr := cmd.Flags().Changed("expr")
	if useExpr == (len(args) == 1) {
		return fmt.Errorf("expected exactly one of a file argument or --expr")
	}
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	if useExpr {
		result = driver.ParseExprSource(cmd.Context(), expr, global.maxDiagnostics)
	} else {
		result, err = driver.Parse(cmd.Context(), args[0], global.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
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
		return diagfmt.FormatASTJSON(out, result.Tree, result.FileSet)
	}
	return diagfmt.FormatASTOutline(out, result.Tree)
}
