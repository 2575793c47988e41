package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"

	"github.com/shinji-kodama/devenv/internal/model"
)

// ContainerSummary is the devenv view of a running or stopped container
// launched from a generated configuration. It decouples the CLI from
// the Docker SDK types.
type ContainerSummary struct {
	// ID is the Docker container identifier.
	ID string `json:"id"`

	// Name is the container name with the API's leading "/" stripped.
	Name string `json:"name"`

	// Project is the value of the com.devenv.project label.
	Project string `json:"project"`

	// Modules lists the module names the container was generated with.
	Modules []string `json:"modules"`

	// Status is the Docker container state (running, exited, created).
	Status string `json:"status"`
}

// ListManagedContainers queries the daemon for all containers carrying
// the "com.devenv.managed=true" label, including stopped ones. The
// filtering happens server-side, which is cheaper than listing every
// container and filtering in Go.
func ListManagedContainers(ctx context.Context, cli *Client) ([]ContainerSummary, error) {
	filterArgs := filters.NewArgs(
		filters.Arg("label", LabelManaged+"="+ManagedValue),
	)

	containers, err := cli.inner.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filterArgs,
	})
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitDockerNotRunning,
			"failed to list Docker containers",
			err,
		)
	}

	result := make([]ContainerSummary, 0, len(containers))
	for _, c := range containers {
		result = append(result, containerToSummary(c))
	}
	return result, nil
}

// containerToSummary maps a Docker API container to the devenv summary.
// Pure mapping, no side effects.
func containerToSummary(c types.Container) ContainerSummary {
	name := ""
	if len(c.Names) > 0 {
		// The Docker API prefixes container names with "/"; strip it
		// for display.
		name = strings.TrimPrefix(c.Names[0], "/")
	}

	return ContainerSummary{
		ID:      c.ID,
		Name:    name,
		Project: c.Labels[LabelProject],
		Modules: ParseModulesLabel(c.Labels[LabelModules]),
		Status:  c.State,
	}
}
