package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pasfmt/internal/driver"
	"pasfmt/internal/ui"
)

var updateCmd = &cobra.Command{
	Use:   "update [flags] <path> [path...]",
	Short: "Rewrite Pascal sources in place",
	Long: `Update formats the given files and directories (recursively collecting
.pas, .pp, .dpr and .lpr files) and writes changed files back, preserving the
original encoding. Use "-" to format stdin to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	updateCmd.Flags().Bool("no-cache", false, "bypass the formatted-output cache")
	updateCmd.Flags().Bool("progress", false, "force the live progress view")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	forceProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	opts, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(driver.FormatStdin(src, &opts))
		return err
	}

	fo := driver.FormatOptions{
		Stdout:  toStdout,
		Jobs:    jobs,
		Options: &opts,
	}
	if !noCache {
		// недоступный кэш не мешает работе
		fo.Cache, _ = driver.OpenFormatCache("pasfmt")
	}

	useProgress := forceProgress || (!toStdout && !quiet && isTerminal(os.Stdout))

	var results []driver.FormatResult
	if useProgress {
		results, err = runWithProgress(cmd, args, fo)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, fo)
	}
	if err != nil {
		return err
	}

	var hasErrors bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "update: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !quiet {
			for _, d := range res.Skipped {
				fmt.Fprintf(os.Stderr, "update: %s: %s\n", res.Path, d)
			}
		}
		if toStdout {
			_, _ = os.Stdout.Write(res.Formatted)
			continue
		}
		if res.Changed && !quiet && !useProgress {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
	if hasErrors {
		return fmt.Errorf("update: failed to format some files")
	}
	return nil
}

// runWithProgress runs FormatPaths under the Bubble Tea progress view.
func runWithProgress(cmd *cobra.Command, args []string, fo driver.FormatOptions) ([]driver.FormatResult, error) {
	files, err := driver.CollectSourceFiles(cmd.Context(), args)
	if err != nil {
		return nil, err
	}

	// каждый файл шлёт не больше двух событий (formatting + итог); буфер на
	// все события, чтобы продюсер не блокировался при раннем выходе из TUI
	events := make(chan driver.FormatEvent, 2*len(files))
	fo.Events = events

	var results []driver.FormatResult
	var formatErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(events)
		results, formatErr = driver.FormatPaths(cmd.Context(), args, fo)
	}()

	program := tea.NewProgram(ui.NewProgressModel("pasfmt update", files, events))
	_, runErr := program.Run()
	<-done
	if runErr != nil {
		return nil, runErr
	}
	return results, formatErr
}
