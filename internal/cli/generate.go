// Package cli — generate.go implements the "devenv generate" command.
//
// generate runs the full merge pipeline and writes both artifacts:
// .devcontainer/devcontainer.json (user output, merged with the
// machine-local user config) and .devcontainer/devcontainer.shared.json
// (project + modules only, safe to check in).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/generate"
	"github.com/shinji-kodama/devenv/internal/model"
)

// NewGenerateCommand creates the "generate" cobra command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate both devcontainer.json artifacts",
		Long: `Resolve modules, merge the project and user configs, and write both
devcontainer artifacts. Outputs are always rewritten so the files on
disk are canonical after every run.

Examples:
  devenv generate
  devenv generate --json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
	}
}

// runGenerate executes the pipeline and translates the terminal states
// into their dedicated exit codes.
func runGenerate() error {
	paths, settings, err := projectPaths()
	if err != nil {
		return err
	}

	result, err := generate.Generate(fsio.OS{}, paths, settings)
	if err != nil {
		return err
	}

	switch result.State {
	case model.GenerateNotInitialized:
		return model.NewCLIError(model.ExitNotInitialized,
			"project is not initialized; run \"devenv init\" first")
	case model.GenerateConfigNotCustomized:
		return model.NewCLIError(model.ExitConfigNotCustomized,
			fmt.Sprintf("edit the name field in %s before generating", paths.ProjectConfig))
	}

	if IsJSONOutput() {
		printJSON(result)
		return nil
	}
	fmt.Printf("%s %s\n", titleStatus(result.User.Status), result.User.Path)
	fmt.Printf("%s %s\n", titleStatus(result.Shared.Status), result.Shared.Path)
	return nil
}

// titleStatus renders a FileStatus with a leading capital for text
// output ("Created", "Updated").
func titleStatus(s model.FileStatus) string {
	switch s {
	case model.FileCreated:
		return "Created"
	case model.FileUpdated:
		return "Updated"
	default:
		return s.String()
	}
}
