package module

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shinji-kodama/devenv/internal/model"
)

// catalog is the immutable name→contribution mapping built once at
// startup. Contributions are returned by value from Resolve, so callers
// can never mutate the catalog through a resolved entry's scalar
// fields; slices and maps inside contributions are treated as read-only
// by convention (the merge engine always copies before combining).
var catalog = map[string]model.ModuleContribution{
	"claude-code": {
		Name:        "claude-code",
		Description: "Integrates Claude Code for AI-assisted development",
		Mounts: []model.Mount{
			{Source: "${localEnv:HOME}/.claude", Target: "/home/vscode/.claude", Type: "bind"},
		},
		RemoteEnv: model.EnvVars{
			{Name: "CLAUDE_CODE_ENABLED", Value: "true"},
		},
		Plugins: model.Plugins{
			VSCode: []string{"anthropic.claude-code"},
		},
		PostCreateCommands: []model.Command{
			{Cmd: "npm install -g @anthropic-ai/claude-code", WorkingDirectory: "."},
		},
	},

	"docker-in-docker": {
		Name:        "docker-in-docker",
		Description: "Allows running Docker commands inside the container",
		Features: map[string]any{
			"ghcr.io/devcontainers/features/docker-in-docker:2": map[string]any{
				"moby":                     true,
				"dockerDashComposeVersion": "v2",
			},
		},
		Mounts: []model.Mount{
			{Source: "/var/run/docker.sock", Target: "/var/run/docker-host.sock", Type: "bind"},
		},
	},

	"apt-updates": {
		Name:        "apt-updates",
		Description: "Refreshes apt package lists and applies pending upgrades",
		PostCreateCommands: []model.Command{
			{Cmd: "sudo apt-get update && sudo apt-get upgrade -y", WorkingDirectory: "."},
		},
	},

	"mise": {
		Name:        "mise",
		Description: "Installs the mise toolchain manager and project tools",
		Mounts: []model.Mount{
			{Source: "${localEnv:HOME}/.local/share/mise", Target: "/home/vscode/.local/share/mise", Type: "bind"},
		},
		PostCreateCommands: []model.Command{
			{Cmd: "curl -fsSL https://mise.run | sh", WorkingDirectory: "."},
			{Cmd: `echo 'eval "$(~/.local/bin/mise activate bash)"' >> ~/.bashrc`, WorkingDirectory: "."},
			{Cmd: "~/.local/bin/mise install", WorkingDirectory: "."},
		},
	},
}

// Names returns the sorted list of all catalog module names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every catalog contribution, sorted by module name.
// Used by the `devenv modules` command.
func All() []model.ModuleContribution {
	contribs := make([]model.ModuleContribution, 0, len(catalog))
	for _, name := range Names() {
		contribs = append(contribs, catalog[name])
	}
	return contribs
}

// Resolve looks up a single module by name. The error for an unknown
// name lists the available catalog so users can spot typos without a
// second command.
func Resolve(name string) (model.ModuleContribution, error) {
	contrib, ok := catalog[name]
	if !ok {
		return model.ModuleContribution{}, model.NewCLIError(
			model.ExitUnknownModule,
			fmt.Sprintf("unknown module %q (available: %s)", name, strings.Join(Names(), ", ")),
		)
	}
	return contrib, nil
}

// ResolveAll resolves an ordered list of module names, preserving input
// order. Resolution is all-or-nothing: the error names every unknown
// module and no contribution is returned, so a failed resolution can
// never be partially applied by the merge engine.
func ResolveAll(names []string) ([]model.ModuleContribution, error) {
	var unknown []string
	contribs := make([]model.ModuleContribution, 0, len(names))

	for _, name := range names {
		contrib, ok := catalog[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		contribs = append(contribs, contrib)
	}

	if len(unknown) > 0 {
		return nil, model.NewCLIError(
			model.ExitUnknownModule,
			fmt.Sprintf("unknown modules: %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(Names(), ", ")),
		)
	}
	return contribs, nil
}
