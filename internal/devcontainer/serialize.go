package devcontainer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shinji-kodama/devenv/internal/docker"
	"github.com/shinji-kodama/devenv/internal/model"
)

// document mirrors the external devcontainer.json schema for the fields
// devenv emits. Struct field order here IS the output key order, so
// reordering fields changes every generated file.
type document struct {
	Name  string `json:"name"`
	Image string `json:"image"`

	ForwardPorts []model.PortForward `json:"forwardPorts,omitempty"`

	ContainerEnv model.EnvVars `json:"containerEnv,omitempty"`
	RemoteEnv    model.EnvVars `json:"remoteEnv,omitempty"`

	// Features is emitted only when non-empty. encoding/json sorts the
	// map keys, which keeps the object deterministic.
	Features map[string]any `json:"features,omitempty"`

	// Customizations is always present, even with two empty lists, so
	// consumers can rely on the namespaces existing.
	Customizations customizations `json:"customizations"`

	Mounts []model.Mount `json:"mounts,omitempty"`

	RemoteUser          string `json:"remoteUser,omitempty"`
	UpdateRemoteUserUID *bool  `json:"updateRemoteUserUID,omitempty"`

	CapAdd      []string `json:"capAdd,omitempty"`
	SecurityOpt []string `json:"securityOpt,omitempty"`

	// RunArgs carries the devenv identification labels. Always present.
	RunArgs []string `json:"runArgs"`

	PostCreateCommand string `json:"postCreateCommand,omitempty"`
	PostStartCommand  string `json:"postStartCommand,omitempty"`
}

// customizations holds the per-IDE plugin namespaces. Both are always
// emitted; the arrays are never null.
type customizations struct {
	VSCode    vscodeCustomization    `json:"vscode"`
	JetBrains jetbrainsCustomization `json:"jetbrains"`
}

type vscodeCustomization struct {
	Extensions []string `json:"extensions"`
}

type jetbrainsCustomization struct {
	Plugins []string `json:"plugins"`
}

// Serialize converts a resolved configuration into formatted
// devcontainer JSON bytes (2-space indent, trailing newline).
func Serialize(resolved *model.ResolvedConfig) ([]byte, error) {
	doc := document{
		Name:         resolved.Name,
		Image:        resolved.Image,
		ForwardPorts: resolved.ForwardPorts,
		ContainerEnv: resolved.ContainerEnv,
		RemoteEnv:    resolved.RemoteEnv,
		Customizations: customizations{
			VSCode:    vscodeCustomization{Extensions: emptyIfNil(resolved.Plugins.VSCode)},
			JetBrains: jetbrainsCustomization{Plugins: emptyIfNil(resolved.Plugins.JetBrains)},
		},
		Mounts:              resolved.Mounts,
		RemoteUser:          resolved.RemoteUser,
		UpdateRemoteUserUID: resolved.UpdateRemoteUserUID,
		CapAdd:              resolved.CapAdd,
		SecurityOpt:         resolved.SecurityOpt,
		RunArgs:             docker.BuildRunArgs(resolved.Name, resolved.Modules),
		PostCreateCommand:   JoinCommands(resolved.PostCreateCommands),
		PostStartCommand:    JoinCommands(resolved.PostStartCommands),
	}

	// An empty features map must disappear entirely, not appear as {}.
	if len(resolved.Features) > 0 {
		doc.Features = resolved.Features
	}

	// An Encoder instead of MarshalIndent: HTML escaping must be off, or
	// every "&&" in a joined command degrades into escaped &&. Encode also
	// appends the trailing newline editors and linters expect.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to serialize devcontainer.json: %w", err)
	}
	return buf.Bytes(), nil
}

// JoinCommands combines an ordered command list into the single shell
// string devcontainer.json expects: each command becomes a
// "(cd <workingDirectory> && <cmd>)" fragment, joined with " && ".
// The subshell keeps each command's directory change from leaking into
// the next command. Returns "" for an empty list, which omits the field.
func JoinCommands(commands []model.Command) string {
	if len(commands) == 0 {
		return ""
	}
	fragments := make([]string, 0, len(commands))
	for _, c := range commands {
		fragments = append(fragments, fmt.Sprintf("(cd %s && %s)", c.WorkingDirectory, c.Cmd))
	}
	return strings.Join(fragments, " && ")
}

// emptyIfNil ensures a plugin list serializes as [] rather than null.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
