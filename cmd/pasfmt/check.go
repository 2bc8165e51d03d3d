package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pasfmt/internal/driver"
	"pasfmt/internal/source"
	"pasfmt/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Report files that need formatting without modifying them",
	Long: `Check runs the formatter in dry-run mode. Files that would change are
listed on stdout and the process exits with a nonzero status, which makes the
command usable as a CI gate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("diff", false, "show a line diff for each file that would change")
	checkCmd.Flags().Bool("review", false, "page through diffs interactively")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	review, err := cmd.Flags().GetBool("review")
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

	// Для диффов нужен результат форматирования, не только факт изменения.
	wantContent := showDiff || review
	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:   !wantContent,
		Stdout:  wantContent,
		Jobs:    jobs,
		Options: &opts,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	var diffs []ui.FileDiff
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if !wantContent {
			if !quiet {
				fmt.Fprintln(os.Stdout, res.Path)
			}
			continue
		}
		diff, diffErr := renderFileDiff(res)
		if diffErr != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, diffErr)
			continue
		}
		if review {
			diffs = append(diffs, ui.FileDiff{Path: res.Path, Diff: diff})
		} else {
			fmt.Fprint(os.Stdout, diff)
		}
	}

	if review && len(diffs) > 0 {
		program := tea.NewProgram(ui.NewReviewModel(diffs), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return err
		}
	}

	if hasErrors {
		return fmt.Errorf("check: failed to check some files")
	}
	if hasChanges {
		return fmt.Errorf("check: formatting changes required")
	}
	return nil
}

// renderFileDiff diffs the decoded on-disk content against the formatter
// output, so UTF-16 files compare in UTF-8 on both sides.
func renderFileDiff(res driver.FormatResult) (string, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(res.Path)
	if err != nil {
		return "", err
	}
	return driver.RenderDiff(res.Path, fileSet.Get(id).Content, res.Formatted), nil
}
