package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"decaf/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new decaf project",
	Long: `Initialize a decaf project by writing a decaf.toml manifest and a sample
main.dcf. Without [path] the current directory is used; a missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "package name (defaults to the directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	created, err := project.Init(target, name)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized decaf project in %s\n", target)
	for _, path := range created {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(path))
	}
	return nil
}
