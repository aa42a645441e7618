package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decaf/internal/prof"
)

var activeProfile *prof.Session

func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var (
		cfg prof.Config
		err error
	)
	if cfg.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("exectrace"); err != nil {
		return fmt.Errorf("failed to get exectrace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	activeProfile, err = prof.Start(cfg)
	return err
}

func stopProfiling() {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
	}
}
