package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"decaf/internal/diag"
	"decaf/internal/diagfmt"
	"decaf/internal/driver"
	"decaf/internal/observ"
	"decaf/internal/source"
	"decaf/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.dcf|directory|-]",
	Short: "Type-check a decaf source file or directory",
	Long: `Check tokenizes, parses and type-checks decaf source. A directory is checked
file by file in parallel. A single "-" reads one program from standard input.
Without an argument, [check].main from decaf.toml is used.
The exit status is non-zero when any error is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|yaml)")
	checkCmd.Flags().String("stage", "all", "last stage to run (tokenize|parse|check|all)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory checks (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress view for directory checks (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "reuse results for unchanged files from the on-disk cache")
	checkCmd.Flags().Bool("clear-cache", false, "remove every on-disk cache entry before checking")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-warnings", false, "drop warnings from the output")
}

type checkFlags struct {
	format     string
	stage      driver.Stage
	jobs       int
	ui         string
	cache      bool
	clearCache bool
	fullPath   bool
	noWarnings bool
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var (
		f   checkFlags
		err error
	)
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "short", "json", "yaml":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	stageStr, err := cmd.Flags().GetString("stage")
	if err != nil {
		return f, fmt.Errorf("failed to get stage flag: %w", err)
	}
	stage, ok := driver.ParseStage(stageStr)
	if !ok {
		return f, fmt.Errorf("unknown stage value: %s", stageStr)
	}
	f.stage = stage
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.ui, err = cmd.Flags().GetString("ui"); err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	switch f.ui {
	case "auto", "on", "off":
	default:
		return f, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", f.ui)
	}
	if f.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.clearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if f.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if f.noWarnings, err = cmd.Flags().GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	return f, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	flags, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}
	global, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}

	target, isDir, err := resolveCheckTarget(args, global)
	if err != nil {
		return err
	}

	opts := driver.DiagnoseOptions{
		Stage:          flags.stage,
		MaxDiagnostics: global.maxDiagnostics,
	}
	if global.timings {
		opts.Timer = observ.NewTimer()
	}
	if flags.cache || flags.clearCache {
		cache, err := driver.OpenDiskCache("decaf")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if flags.clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if flags.cache {
			opts.Cache = cache
		}
	}

	ctx := cmd.Context()
	var (
		fs      *source.FileSet
		results []*driver.DiagnoseResult
	)
	if isDir {
		fs, results, err = checkDir(ctx, target, opts, flags)
	} else {
		var res *driver.DiagnoseResult
		if target == stdinTarget {
			res, err = diagnoseReader(ctx, cmd.InOrStdin(), opts)
		} else {
			res, err = driver.Diagnose(ctx, target, opts)
		}
		if res != nil {
			fs, results = res.FileSet, []*driver.DiagnoseResult{res}
		}
	}
	if err != nil {
		return err
	}

	bag := driver.Merge(results, 0)
	if flags.noWarnings {
		bag = dropWarnings(bag)
	}
	if err := renderCheck(cmd, bag, fs, flags, global); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	if !global.quiet && flags.format == "pretty" {
		printCheckSummary(cmd.ErrOrStderr(), len(results), failed, bag)
	}
	if global.timings {
		fmt.Fprint(cmd.ErrOrStderr(), opts.Timer.Summary())
	}
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}

// stdinTarget names standard input on the command line.
const stdinTarget = "-"

// diagnoseReader checks one program read from r under the name "<stdin>".
func diagnoseReader(ctx context.Context, r io.Reader, opts driver.DiagnoseOptions) (*driver.DiagnoseResult, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	return driver.DiagnoseSource(ctx, "<stdin>", src, opts)
}

func resolveCheckTarget(args []string, global globalOptions) (string, bool, error) {
	if len(args) == 1 && args[0] == stdinTarget {
		return stdinTarget, false, nil
	}
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return "", false, fmt.Errorf("failed to stat %s: %w", args[0], err)
		}
		return args[0], info.IsDir(), nil
	}
	if global.manifest == nil {
		return "", false, errors.New("no input given and no decaf.toml found\nplease specify a file or directory, e.g.:\n  decaf check path/to/main.dcf")
	}
	return global.manifest.Target()
}

func checkDir(ctx context.Context, dir string, opts driver.DiagnoseOptions, flags checkFlags) (*source.FileSet, []*driver.DiagnoseResult, error) {
	showUI := flags.ui == "on" || (flags.ui == "auto" && isTerminal(os.Stdout))
	if !showUI {
		return driver.DiagnoseDir(ctx, dir, opts, flags.jobs)
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	// Progress events carry slash-separated paths.
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.ToSlash(f)
	}

	type outcome struct {
		fs      *source.FileSet
		results []*driver.DiagnoseResult
		err     error
	}
	events := make(chan driver.Event, 256)
	done := make(chan outcome, 1)
	go func() {
		o := opts
		o.Sink = driver.ChannelSink{Ch: events}
		fs, results, err := driver.DiagnoseDir(ctx, dir, o, flags.jobs)
		done <- outcome{fs, results, err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel("checking "+dir, names, opts.Stage, events), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// Drain in case the view quit early.
	for range events {
	}
	out := <-done
	if uiErr != nil {
		return out.fs, out.results, uiErr
	}
	return out.fs, out.results, out.err
}

func renderCheck(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, flags checkFlags, global globalOptions) error {
	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	switch flags.format {
	case "pretty":
		if bag.Len() == 0 {
			return nil
		}
		opts, err := global.prettyOpts(cmd, os.Stdout)
		if err != nil {
			return err
		}
		opts.PathMode = pathMode
		diagfmt.Pretty(out, bag, fs, opts)
	case "short":
		diagfmt.Short(out, bag, fs, pathMode)
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, PathMode: pathMode, IncludeNotes: true})
	case "yaml":
		return diagfmt.YAML(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, PathMode: pathMode, IncludeNotes: true})
	}
	return nil
}

func dropWarnings(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			out.Add(d)
		}
	}
	return out
}

func printCheckSummary(w io.Writer, files, failed int, bag *diag.Bag) {
	errs, warns := bag.Count(diag.SevError), bag.Count(diag.SevWarning)
	var parts []string
	parts = append(parts, plural(files, "file"))
	if errs > 0 {
		parts = append(parts, plural(errs, "error"))
	}
	if warns > 0 {
		parts = append(parts, plural(warns, "warning"))
	}
	verdict := "ok"
	if failed > 0 {
		verdict = fmt.Sprintf("%d failed", failed)
	}
	fmt.Fprintf(w, "checked %s: %s\n", strings.Join(parts, ", "), verdict)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
