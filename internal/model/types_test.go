package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// --- PortForward tests ---

// TestPortForward_UnmarshalYAML verifies the three accepted input
// forms: bare integer, numeric string, and "host:container" string.
func TestPortForward_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		ForwardPorts []PortForward `yaml:"forwardPorts"`
	}
	src := `
forwardPorts:
  - 8080
  - "3000"
  - "8000:9000"
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	require.Len(t, cfg.ForwardPorts, 3)

	assert.Equal(t, PortForward{Host: 8080, Container: 8080}, cfg.ForwardPorts[0])
	assert.Equal(t, PortForward{Host: 3000, Container: 3000}, cfg.ForwardPorts[1])
	assert.Equal(t, PortForward{Host: 8000, Container: 9000}, cfg.ForwardPorts[2])
}

// TestPortForward_UnmarshalYAML_Invalid verifies that garbage entries
// are rejected rather than silently skipped.
func TestPortForward_UnmarshalYAML_Invalid(t *testing.T) {
	var p PortForward
	err := yaml.Unmarshal([]byte(`"web:abc"`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid host port")
}

// TestPortForward_MarshalJSON verifies the serialization rule: a
// same-port forward becomes a bare integer, a distinct host/container
// pair becomes a "host:container" string.
func TestPortForward_MarshalJSON(t *testing.T) {
	same, err := json.Marshal(PortForward{Host: 8080, Container: 8080})
	require.NoError(t, err)
	assert.Equal(t, `8080`, string(same))

	pair, err := json.Marshal(PortForward{Host: 8000, Container: 9000})
	require.NoError(t, err)
	assert.Equal(t, `"8000:9000"`, string(pair))
}

// TestPortForward_Validate verifies the 1-65535 range check on both
// sides of the mapping.
func TestPortForward_Validate(t *testing.T) {
	assert.NoError(t, PortForward{Host: 1, Container: 65535}.Validate())
	assert.Error(t, PortForward{Host: 0, Container: 80}.Validate())
	assert.Error(t, PortForward{Host: 80, Container: 70000}.Validate())
}

// --- EnvVars tests ---

// TestEnvVars_OrderPreserved verifies that YAML mapping order survives
// the round trip into JSON. A plain map would sort (or scramble) keys;
// the pair slice must not.
func TestEnvVars_OrderPreserved(t *testing.T) {
	var vars EnvVars
	src := "ZEBRA: last\nAPPLE: first\nMIDDLE: between\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &vars))

	require.Len(t, vars, 3)
	assert.Equal(t, "ZEBRA", vars[0].Name)
	assert.Equal(t, "APPLE", vars[1].Name)
	assert.Equal(t, "MIDDLE", vars[2].Name)

	out, err := json.Marshal(vars)
	require.NoError(t, err)
	assert.Equal(t, `{"ZEBRA":"last","APPLE":"first","MIDDLE":"between"}`, string(out))
}

// TestEnvVars_RejectsSequence verifies that a YAML sequence is rejected
// with a helpful message instead of decoding to garbage.
func TestEnvVars_RejectsSequence(t *testing.T) {
	var vars EnvVars
	err := yaml.Unmarshal([]byte("- FOO=bar\n"), &vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}

// --- Mount tests ---

// TestMount_UnmarshalYAML verifies both input forms: opaque string and
// structured source/target/type mapping.
func TestMount_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		Mounts []Mount `yaml:"mounts"`
	}
	src := `
mounts:
  - "source=/tmp,target=/tmp,type=bind"
  - source: ${localEnv:HOME}/.claude
    target: /home/vscode/.claude
    type: bind
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	require.Len(t, cfg.Mounts, 2)

	assert.True(t, cfg.Mounts[0].IsOpaque())
	assert.Equal(t, "source=/tmp,target=/tmp,type=bind", cfg.Mounts[0].Raw)

	assert.False(t, cfg.Mounts[1].IsOpaque())
	assert.Equal(t, "${localEnv:HOME}/.claude", cfg.Mounts[1].Source)
	assert.Equal(t, "/home/vscode/.claude", cfg.Mounts[1].Target)
	assert.Equal(t, "bind", cfg.Mounts[1].Type)
}

// TestMount_MarshalJSON verifies that opaque mounts pass through as
// strings and structured mounts become {source,target,type} objects.
func TestMount_MarshalJSON(t *testing.T) {
	opaque, err := json.Marshal(Mount{Raw: "source=a,target=b,type=volume"})
	require.NoError(t, err)
	assert.Equal(t, `"source=a,target=b,type=volume"`, string(opaque))

	structured, err := json.Marshal(Mount{Source: "/a", Target: "/b", Type: "bind"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"/a","target":"/b","type":"bind"}`, string(structured))
}

// --- Command tests ---

// TestCommand_UnmarshalYAML verifies the bare-string shorthand (working
// directory defaults to ".") and the explicit mapping form.
func TestCommand_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		PostCreate []Command `yaml:"postCreateCommand"`
	}
	src := `
postCreateCommand:
  - npm install
  - cmd: make setup
    workingDirectory: tools
  - cmd: make lint
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	require.Len(t, cfg.PostCreate, 3)

	assert.Equal(t, Command{Cmd: "npm install", WorkingDirectory: "."}, cfg.PostCreate[0])
	assert.Equal(t, Command{Cmd: "make setup", WorkingDirectory: "tools"}, cfg.PostCreate[1])
	// Mapping form without workingDirectory also defaults to ".".
	assert.Equal(t, Command{Cmd: "make lint", WorkingDirectory: "."}, cfg.PostCreate[2])
}

// TestCommand_UnmarshalYAML_MissingCmd verifies that a mapping entry
// without cmd is rejected.
func TestCommand_UnmarshalYAML_MissingCmd(t *testing.T) {
	var c Command
	err := yaml.Unmarshal([]byte("workingDirectory: tools\n"), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing the cmd field")
}

// --- ProjectConfig tests ---

// TestProjectConfig_IsCustomized verifies the placeholder guard that
// blocks generation until the scaffold has been edited.
func TestProjectConfig_IsCustomized(t *testing.T) {
	placeholder := ProjectConfig{Name: PlaceholderName}
	assert.False(t, placeholder.IsCustomized())

	customized := ProjectConfig{Name: "My Real Project"}
	assert.True(t, customized.IsCustomized())
}

// TestProjectConfig_Validate verifies that an out-of-range port fails
// validation of the whole config.
func TestProjectConfig_Validate(t *testing.T) {
	cfg := ProjectConfig{
		Name:         "demo",
		ForwardPorts: []PortForward{{Host: 8080, Container: 8080}, {Host: 99999, Container: 80}},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

// --- DedupeStrings tests ---

// TestDedupeStrings verifies first-occurrence-wins deduplication, the
// rule used for plugin list merging.
func TestDedupeStrings(t *testing.T) {
	in := []string{"p1", "p2", "p2", "p3", "p1"}
	assert.Equal(t, []string{"p1", "p2", "p3"}, DedupeStrings(in))

	// Empty input yields an empty (non-nil) slice.
	assert.Empty(t, DedupeStrings(nil))
}
