package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlaceholderName is the reserved project name written by `devenv init`.
// Generation refuses to proceed while the project config still carries
// this value, which forces users to customize the scaffold before the
// first devcontainer.json is produced.
const PlaceholderName = "My Test Project"

// PortForward represents a single forwarded port. A forward where host
// and container port are equal serializes as a bare JSON integer; a
// distinct pair serializes as the string "host:container", matching the
// devcontainer.json forwardPorts conventions.
type PortForward struct {
	// Host is the port number on the host machine.
	Host int

	// Container is the port number inside the container.
	Container int
}

// UnmarshalYAML accepts either an integer (same host and container
// port) or a "host:container" string. A bare numeric string such as
// "8080" is treated like the integer form.
func (p *PortForward) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("forwardPorts entry must be a number or \"host:container\" string")
	}

	// Try the integer form first. yaml.v3 decodes quoted and unquoted
	// scalars alike, so we inspect the string value directly.
	if n, err := strconv.Atoi(value.Value); err == nil {
		p.Host = n
		p.Container = n
		return nil
	}

	host, container, found := strings.Cut(value.Value, ":")
	if !found {
		return fmt.Errorf("invalid forwardPorts entry %q: expected a port number or \"host:container\"", value.Value)
	}
	h, err := strconv.Atoi(host)
	if err != nil {
		return fmt.Errorf("invalid host port in forwardPorts entry %q: %w", value.Value, err)
	}
	c, err := strconv.Atoi(container)
	if err != nil {
		return fmt.Errorf("invalid container port in forwardPorts entry %q: %w", value.Value, err)
	}
	p.Host = h
	p.Container = c
	return nil
}

// MarshalJSON emits a bare integer for same-port forwards and a
// "host:container" string for distinct pairs.
func (p PortForward) MarshalJSON() ([]byte, error) {
	if p.Host == p.Container {
		return json.Marshal(p.Container)
	}
	return json.Marshal(fmt.Sprintf("%d:%d", p.Host, p.Container))
}

// Validate checks that both port numbers are within the valid TCP range.
func (p PortForward) Validate() error {
	if p.Host < 1 || p.Host > 65535 {
		return fmt.Errorf("forward port: host port %d out of range (1-65535)", p.Host)
	}
	if p.Container < 1 || p.Container > 65535 {
		return fmt.Errorf("forward port: container port %d out of range (1-65535)", p.Container)
	}
	return nil
}

// EnvVar is a single name/value environment variable pair.
type EnvVar struct {
	Name  string
	Value string
}

// EnvVars is an ordered list of environment variable pairs. Order is
// semantically significant (later module contributions and explicit
// project values must stay behind earlier ones), so the type is a slice
// rather than a map, with custom YAML and JSON codecs that present it
// as an object while preserving declaration order.
type EnvVars []EnvVar

// UnmarshalYAML decodes a YAML mapping into the ordered pair list.
// yaml.Node exposes mapping entries in document order, which a plain
// map[string]string target would destroy.
func (e *EnvVars) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("environment variables must be a mapping of name to value")
	}

	// Mapping nodes store keys and values interleaved in Content:
	// [key0, val0, key1, val1, ...].
	vars := make(EnvVars, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v string
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("environment variable %q: %w", value.Content[i].Value, err)
		}
		vars = append(vars, EnvVar{Name: value.Content[i].Value, Value: v})
	}
	*e = vars
	return nil
}

// MarshalJSON emits a JSON object whose keys appear in declaration
// order. encoding/json would sort map keys, so the object is assembled
// by hand from individually encoded names and values.
func (e EnvVars) MarshalJSON() ([]byte, error) {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, v := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(v.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}

// Plugins holds the per-IDE plugin identifier lists. Both lists are
// ordered; deduplication (first occurrence wins) happens in the merge
// engine, not here.
type Plugins struct {
	// VSCode lists VS Code extension identifiers (e.g. "golang.go").
	VSCode []string `yaml:"vscode"`

	// JetBrains lists JetBrains plugin identifiers.
	JetBrains []string `yaml:"jetbrains"`
}

// Mount is a container mount specification. It has two mutually
// exclusive representations: an opaque string passed through verbatim
// (Raw non-empty), or a structured source/target/type record.
type Mount struct {
	// Raw is the opaque string form. When non-empty the structured
	// fields are ignored.
	Raw string

	Source string
	Target string
	Type   string
}

// IsOpaque reports whether the mount uses the opaque string form.
func (m Mount) IsOpaque() bool {
	return m.Raw != ""
}

// UnmarshalYAML accepts either a plain string or a mapping with
// source/target/type keys.
func (m *Mount) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		m.Raw = value.Value
		return nil
	case yaml.MappingNode:
		var aux struct {
			Source string `yaml:"source"`
			Target string `yaml:"target"`
			Type   string `yaml:"type"`
		}
		if err := value.Decode(&aux); err != nil {
			return fmt.Errorf("invalid mount entry: %w", err)
		}
		m.Source = aux.Source
		m.Target = aux.Target
		m.Type = aux.Type
		return nil
	default:
		return fmt.Errorf("mount entry must be a string or a source/target/type mapping")
	}
}

// MarshalJSON emits the opaque string verbatim, or a
// {source,target,type} object for structured mounts.
func (m Mount) MarshalJSON() ([]byte, error) {
	if m.IsOpaque() {
		return json.Marshal(m.Raw)
	}
	return json.Marshal(struct {
		Source string `json:"source"`
		Target string `json:"target"`
		Type   string `json:"type"`
	}{m.Source, m.Target, m.Type})
}

// Command is a single lifecycle command with the directory it runs in.
// The serializer renders each command as "(cd <workingDirectory> && <cmd>)".
type Command struct {
	// Cmd is the shell command line.
	Cmd string `yaml:"cmd"`

	// WorkingDirectory is the directory the command runs in, relative to
	// the workspace root. Defaults to ".".
	WorkingDirectory string `yaml:"workingDirectory"`
}

// UnmarshalYAML accepts either a bare string (run in ".") or a mapping
// with cmd/workingDirectory keys.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Cmd = value.Value
		c.WorkingDirectory = "."
		return nil
	case yaml.MappingNode:
		var aux struct {
			Cmd              string `yaml:"cmd"`
			WorkingDirectory string `yaml:"workingDirectory"`
		}
		if err := value.Decode(&aux); err != nil {
			return fmt.Errorf("invalid command entry: %w", err)
		}
		if aux.Cmd == "" {
			return fmt.Errorf("command entry is missing the cmd field")
		}
		c.Cmd = aux.Cmd
		c.WorkingDirectory = aux.WorkingDirectory
		if c.WorkingDirectory == "" {
			c.WorkingDirectory = "."
		}
		return nil
	default:
		return fmt.Errorf("command entry must be a string or a cmd/workingDirectory mapping")
	}
}

// Dotfiles describes the user's dotfiles repository. When present, the
// merge engine synthesizes a clone command and an install command ahead
// of all other postCreate commands in the user output.
type Dotfiles struct {
	// Repository is the git clone URL.
	Repository string `yaml:"repository"`

	// TargetPath is where the repository is cloned inside the container.
	TargetPath string `yaml:"targetPath"`

	// InstallCommand is run inside TargetPath after cloning.
	InstallCommand string `yaml:"installCommand"`
}

// ProjectConfig is the parsed project-level configuration document
// (.devcontainer/devenv.yaml). It is checked into version control and
// describes the project's desired container environment.
type ProjectConfig struct {
	// Name identifies the environment. Generation is blocked while it
	// still equals PlaceholderName.
	Name string `yaml:"name"`

	// Image is the base container image. Defaulted by the loader when
	// absent.
	Image string `yaml:"image"`

	// Modules lists built-in module names in application order. Order is
	// semantically significant: earlier modules contribute earlier.
	Modules []string `yaml:"modules"`

	ForwardPorts []PortForward `yaml:"forwardPorts"`

	RemoteEnv    EnvVars `yaml:"remoteEnv"`
	ContainerEnv EnvVars `yaml:"containerEnv"`

	Plugins Plugins `yaml:"plugins"`

	Mounts []Mount `yaml:"mounts"`

	PostCreateCommands []Command `yaml:"postCreateCommand"`
	PostStartCommands  []Command `yaml:"postStartCommand"`

	// Features maps devcontainer feature identifiers to their option
	// blobs. Values are arbitrary YAML/JSON structures passed through to
	// the output untouched.
	Features map[string]any `yaml:"features"`

	RemoteUser          string `yaml:"remoteUser"`
	UpdateRemoteUserUID *bool  `yaml:"updateRemoteUserUID"`

	CapAdd      []string `yaml:"capAdd"`
	SecurityOpt []string `yaml:"securityOpt"`
}

// Validate checks the invariants the merge engine relies on. Module
// name resolution is deliberately not checked here — that is the
// registry's job, so the unknown-module error can list the catalog.
func (c *ProjectConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("project config: name must not be empty")
	}
	for _, p := range c.ForwardPorts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("project config: %w", err)
		}
	}
	return nil
}

// IsCustomized reports whether the project name has been changed away
// from the init scaffold placeholder.
func (c *ProjectConfig) IsCustomized() bool {
	return c.Name != PlaceholderName
}

// UserConfig is the parsed user-level configuration document. It lives
// outside version control and only carries personal preferences — it
// cannot alter the image, ports, env, mounts, or features.
type UserConfig struct {
	Plugins  Plugins   `yaml:"plugins"`
	Dotfiles *Dotfiles `yaml:"dotfiles"`
}

// ModuleContribution is a named, versionless bundle of container
// configuration contributed by a built-in module. It has the same
// partial shape as ProjectConfig.
type ModuleContribution struct {
	// Name is the module's catalog identifier.
	Name string

	// Description is a one-line summary shown by `devenv modules`.
	Description string

	Features           map[string]any
	Mounts             []Mount
	Plugins            Plugins
	RemoteEnv          EnvVars
	ContainerEnv       EnvVars
	PostCreateCommands []Command
	CapAdd             []string
	SecurityOpt        []string
}

// ResolvedConfig is the final merged configuration produced by the
// merge engine and consumed by the serializer. Two resolved configs
// exist per generation: the shared one (project + modules) and the user
// one (project + modules + user overlay).
type ResolvedConfig struct {
	Name  string
	Image string

	// Modules records the applied module names for the identification
	// labels emitted into runArgs.
	Modules []string

	ForwardPorts []PortForward

	RemoteEnv    EnvVars
	ContainerEnv EnvVars

	Plugins Plugins

	Mounts []Mount

	PostCreateCommands []Command
	PostStartCommands  []Command

	Features map[string]any

	RemoteUser          string
	UpdateRemoteUserUID *bool

	CapAdd      []string
	SecurityOpt []string
}

// DedupeStrings returns a new slice with duplicates removed, keeping
// the first occurrence of each value in its original position. Used for
// plugin list merging; other list fields concatenate without deduping.
func DedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
