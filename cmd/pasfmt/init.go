package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pasfmt/internal/options"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a pasfmt.toml with the default configuration",
	Long: `Init creates a commented pasfmt.toml in the given directory (default:
the current one) so every knob is visible and documented. It refuses to
overwrite an existing configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	path := filepath.Join(target, options.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("already configured: %s exists", path)
	}

	if err := options.Save(path, options.Default()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}
