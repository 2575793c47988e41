// Package cli — init.go implements the "devenv init" command.
//
// init writes the scaffold project config into .devcontainer/devenv.yaml.
// The scaffold carries the placeholder project name, so a freshly
// initialized project cannot generate artifacts until the user edits it.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devenv/internal/config"
	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/model"
)

// NewInitCommand creates the "init" cobra command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a scaffold project config in the current directory",
		Long: `Create .devcontainer/devenv.yaml with a commented scaffold.

The scaffold's project name is a placeholder; edit it before running
"devenv generate". init refuses to overwrite an existing config.`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

// runInit writes the scaffold, refusing to clobber an existing config.
func runInit() error {
	paths, _, err := projectPaths()
	if err != nil {
		return err
	}

	fs := fsio.OS{}

	// Never overwrite: an existing config may carry real settings.
	if _, err := fs.ReadFile(paths.ProjectConfig); err == nil {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("%s already exists; edit it or remove it first", paths.ProjectConfig))
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := fs.MkdirAll(paths.ConfigDir); err != nil {
		return err
	}
	if _, err := fs.WriteFile(paths.ProjectConfig, config.Scaffold()); err != nil {
		return err
	}

	if IsJSONOutput() {
		printJSON(map[string]string{"created": paths.ProjectConfig})
	} else {
		fmt.Printf("Created %s\n", paths.ProjectConfig)
		fmt.Println("Edit the name field, then run \"devenv generate\".")
	}
	return nil
}
