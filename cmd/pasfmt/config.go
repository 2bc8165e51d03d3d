package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pasfmt/internal/options"
)

// loadConfig resolves the effective configuration: the --config flag wins,
// otherwise the nearest pasfmt.toml upward from the working directory, with
// defaults per missing field. A missing file is not an error; a broken one is.
func loadConfig(cmd *cobra.Command) (options.Options, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return options.Default(), err
	}
	if explicit != "" {
		opts, err := options.Load(explicit)
		if err != nil {
			return opts, fmt.Errorf("config %s: %w", explicit, err)
		}
		return opts, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return options.Default(), err
	}
	path, found, err := options.Find(wd)
	if err != nil || !found {
		return options.Default(), err
	}
	opts, err := options.Load(path)
	if err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}
