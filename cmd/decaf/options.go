package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decaf/internal/diagfmt"
	"decaf/internal/project"
)

type globalOptions struct {
	maxDiagnostics int
	quiet          bool
	timings        bool
	manifest       *project.Manifest // nil outside a project
}

// readGlobalOptions reads the persistent flags. Manifest values fill in
// anything the user did not set explicitly.
func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Root().PersistentFlags()
	var (
		opts globalOptions
		err  error
	)
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return opts, err
	}
	manifest, err := project.LoadManifest(wd)
	switch {
	case errors.Is(err, project.ErrNoManifest):
	case err != nil:
		return opts, err
	default:
		opts.manifest = manifest
		if !flags.Changed("max-diagnostics") {
			opts.maxDiagnostics = manifest.Config.Check.MaxDiagnostics
		}
	}
	return opts, nil
}

func (o globalOptions) manifestColor() string {
	if o.manifest == nil {
		return ""
	}
	return o.manifest.Config.Check.Color
}

// prettyOpts builds pretty-printer options for output going to f.
func (o globalOptions) prettyOpts(cmd *cobra.Command, f *os.File) (diagfmt.PrettyOpts, error) {
	color, err := useColor(cmd, f, o.manifestColor())
	if err != nil {
		return diagfmt.PrettyOpts{}, err
	}
	return diagfmt.PrettyOpts{Color: color, Context: 2, ShowNotes: true}, nil
}
