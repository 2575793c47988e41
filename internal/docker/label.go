package docker

import (
	"fmt"
	"strings"
)

// Label key constants define the Docker labels injected into generated
// devcontainer.json runArgs. All keys share the "com.devenv." prefix to
// namespace them away from labels set by other tooling.
//
// The label set is deliberately static data derived only from the
// resolved configuration — no timestamps, no host paths — because the
// serialized output must be byte-identical across runs for drift
// detection to work.
const (
	// LabelPrefix is the common prefix for all devenv labels.
	LabelPrefix = "com.devenv."

	// LabelManaged marks containers launched from a devenv-generated
	// configuration. Key: "com.devenv.managed", value: always "true".
	LabelManaged = LabelPrefix + "managed"

	// LabelProject stores the project name from the resolved config.
	LabelProject = LabelPrefix + "project"

	// LabelModules stores the applied module names as a comma-separated
	// list. Empty when the project uses no modules.
	LabelModules = LabelPrefix + "modules"
)

// ManagedValue is the constant value of the LabelManaged label.
const ManagedValue = "true"

// BuildRunArgs returns the `--label` arguments embedded into a
// generated configuration's runArgs. The order is fixed (managed,
// project, modules) so serialization stays deterministic.
func BuildRunArgs(projectName string, modules []string) []string {
	return []string{
		fmt.Sprintf("--label=%s=%s", LabelManaged, ManagedValue),
		fmt.Sprintf("--label=%s=%s", LabelProject, projectName),
		fmt.Sprintf("--label=%s=%s", LabelModules, strings.Join(modules, ",")),
	}
}

// ParseModulesLabel splits the comma-separated modules label value back
// into a name list. An empty value yields an empty slice, not [""].
func ParseModulesLabel(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
