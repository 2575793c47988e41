// Package cli — check.go implements the "devenv check" command.
//
// check recomputes both artifacts through the exact generate pipeline
// and compares them byte-for-byte against what is on disk. It is the
// CI guard against drift: a mismatch exits non-zero without touching
// any file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/generate"
	"github.com/shinji-kodama/devenv/internal/model"
)

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the generated artifacts are up to date",
		Long: `Recompute both devcontainer artifacts and compare them byte-for-byte
against the files on disk. Nothing is written.

Exits 0 when both files match, and a dedicated non-zero code when any
file has drifted (hand-edited, deleted, or stale after a config change).

Examples:
  devenv check
  devenv check --json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

// runCheck executes the comparison and maps each terminal state onto
// its exit code. Only CheckMatch exits 0.
func runCheck() error {
	paths, settings, err := projectPaths()
	if err != nil {
		return err
	}

	result, err := generate.Check(fsio.OS{}, paths, settings)
	if err != nil {
		return err
	}

	switch result.State {
	case model.CheckNotInitialized:
		return model.NewCLIError(model.ExitNotInitialized,
			"project is not initialized; run \"devenv init\" first")
	case model.CheckConfigNotCustomized:
		return model.NewCLIError(model.ExitConfigNotCustomized,
			fmt.Sprintf("edit the name field in %s before checking", paths.ProjectConfig))
	case model.CheckMismatch:
		// Print the structured result first so CI logs capture which
		// files drifted, then fail with the drift exit code.
		if IsJSONOutput() {
			printJSON(result)
		} else {
			for _, diff := range result.Diffs {
				fmt.Printf("Drift: %s\n", diff.Path)
			}
		}
		return model.NewCLIError(model.ExitDriftDetected,
			fmt.Sprintf("%s; run \"devenv generate\" to refresh", result.Summary()))
	}

	if IsJSONOutput() {
		printJSON(result)
	} else {
		fmt.Println(result.Summary())
	}
	return nil
}
