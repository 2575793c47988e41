// Package cli — validate.go implements the "devenv validate" command.
//
// validate inspects the generated artifacts on disk (JSONC tolerated)
// and reports structural problems: missing name or image, the
// placeholder project name, absent customization namespaces, or
// malformed forwardPorts entries.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devenv/internal/devcontainer"
	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/model"
)

// NewValidateCommand creates the "validate" cobra command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the generated artifacts on disk",
		Long: `Parse both generated devcontainer artifacts and report structural
problems. Unlike check, validate does not recompute anything — it only
inspects what is on disk, so it also works on hand-maintained files.

Examples:
  devenv validate
  devenv validate --json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

// fileValidation pairs an artifact path with its validation findings.
type fileValidation struct {
	Path   string   `json:"path"`
	Errors []string `json:"errors"`
}

// runValidate validates every artifact that exists. Validating a
// project with no artifacts at all is an error; a single missing file
// is skipped (the shared file may simply not be distributed).
func runValidate() error {
	paths, _, err := projectPaths()
	if err != nil {
		return err
	}

	fs := fsio.OS{}
	var results []fileValidation
	failed := false

	for _, path := range []string{paths.UserOutput, paths.SharedOutput} {
		data, err := fs.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				VerboseLog("Skipping %s: file does not exist", path)
				continue
			}
			return err
		}

		entry := fileValidation{Path: path, Errors: []string{}}
		for _, verr := range devcontainer.ValidateGenerated(data) {
			entry.Errors = append(entry.Errors, fmt.Sprintf("%s: %s", verr.Field, verr.Message))
			failed = true
		}
		results = append(results, entry)
	}

	if len(results) == 0 {
		return model.NewCLIError(model.ExitNotInitialized,
			"no generated artifacts found; run \"devenv generate\" first")
	}

	if IsJSONOutput() {
		printJSON(map[string][]fileValidation{"files": results})
	} else {
		for _, r := range results {
			if len(r.Errors) == 0 {
				fmt.Printf("%s: OK\n", r.Path)
				continue
			}
			fmt.Printf("%s:\n", r.Path)
			for _, msg := range r.Errors {
				fmt.Printf("  - %s\n", msg)
			}
		}
	}

	if failed {
		return model.NewCLIError(model.ExitInvalidConfig, "validation failed")
	}
	return nil
}
