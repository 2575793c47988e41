// Package cli — modules.go implements the "devenv modules" command.
//
// modules prints the built-in module catalog so users can discover what
// they can list under "modules:" in the project config.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devenv/internal/module"
)

// NewModulesCommand creates the "modules" cobra command.
func NewModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the built-in module catalog",
		Long: `List every built-in module with its description. Add module names to
the "modules:" list in .devcontainer/devenv.yaml to apply them.

Examples:
  devenv modules
  devenv modules --json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runModules()
			return nil
		},
	}
}

// moduleJSON is the JSON output structure for one catalog entry.
type moduleJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// runModules prints the catalog in name order (module.All already
// sorts).
func runModules() {
	contribs := module.All()

	if IsJSONOutput() {
		entries := make([]moduleJSON, 0, len(contribs))
		for _, c := range contribs {
			entries = append(entries, moduleJSON{Name: c.Name, Description: c.Description})
		}
		printJSON(map[string][]moduleJSON{"modules": entries})
		return
	}

	fmt.Printf("%-18s %s\n", "NAME", "DESCRIPTION")
	for _, c := range contribs {
		fmt.Printf("%-18s %s\n", c.Name, c.Description)
	}
}
