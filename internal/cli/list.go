// Package cli — list.go implements the "devenv list" command.
//
// list displays the containers launched from generated configurations
// by querying Docker for the "com.devenv.managed=true" label. Results
// come out as a text table or a JSON array, depending on the --json
// flag. An optional --project flag filters by project name.
package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devenv/internal/docker"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// project filters containers by their com.devenv.project label.
	// Empty means no filtering.
	project string
}

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List containers launched from generated configurations",
		Long: `List all Docker containers carrying the devenv management label,
including stopped ones.

Examples:
  devenv list
  devenv list --project my-api
  devenv list --json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.project, "project", "",
		"Only show containers belonging to this project")

	return cmd
}

// runList connects to Docker, fetches managed containers, applies the
// project filter, and prints the result.
func runList(ctx context.Context, flags *listFlags) error {
	cli, err := docker.NewClient()
	if err != nil {
		return err // NewClient already returns CLIError with ExitDockerNotRunning
	}
	defer func() { _ = cli.Close() }()

	if err := cli.Ping(ctx); err != nil {
		return err
	}
	VerboseLog("Connected to Docker daemon")

	containers, err := docker.ListManagedContainers(ctx, cli)
	if err != nil {
		return err
	}
	VerboseLog("Found %d managed containers", len(containers))

	if flags.project != "" {
		filtered := make([]docker.ContainerSummary, 0, len(containers))
		for _, c := range containers {
			if c.Project == flags.project {
				filtered = append(filtered, c)
			}
		}
		containers = filtered
	}

	// Sort by project, then name, for stable output across runs.
	sort.Slice(containers, func(i, j int) bool {
		if containers[i].Project != containers[j].Project {
			return containers[i].Project < containers[j].Project
		}
		return containers[i].Name < containers[j].Name
	})

	printListResult(containers)
	return nil
}

// printListResult outputs the container list in text or JSON format.
func printListResult(containers []docker.ContainerSummary) {
	if IsJSONOutput() {
		// An empty slice serializes as [] instead of null.
		if containers == nil {
			containers = []docker.ContainerSummary{}
		}
		printJSON(map[string][]docker.ContainerSummary{"containers": containers})
		return
	}

	if len(containers) == 0 {
		fmt.Println("No managed containers found.")
		return
	}

	fmt.Printf("%-24s %-20s %-10s %s\n", "NAME", "PROJECT", "STATUS", "MODULES")
	for _, c := range containers {
		fmt.Printf("%-24s %-20s %-10s %s\n",
			c.Name,
			c.Project,
			c.Status,
			FormatModulesList(c.Modules),
		)
	}
}

// FormatModulesList renders a module name list for the text table.
// Returns "-" for a container generated without modules.
//
// This function is exported for testing purposes (tested in
// list_test.go).
func FormatModulesList(modules []string) string {
	if len(modules) == 0 {
		return "-"
	}
	return strings.Join(modules, ",")
}
