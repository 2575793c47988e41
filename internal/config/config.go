package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/model"
)

// DefaultImage is the base image used when the project config does not
// specify one. Vanilla Ubuntu LTS — toolchains come from modules.
const DefaultImage = "mcr.microsoft.com/devcontainers/base:ubuntu-24.04"

// ConfigDirName is the project-relative directory holding the project
// config and both generated outputs.
const ConfigDirName = ".devcontainer"

// Fixed project-relative file paths. generate writes the user output
// and the shared output; check reads them back.
const (
	projectConfigName = "devenv.yaml"
	userOutputName    = "devcontainer.json"
	sharedOutputName  = "devcontainer.shared.json"
)

// Paths bundles the resolved file locations for one project.
type Paths struct {
	// ConfigDir is <projectDir>/.devcontainer.
	ConfigDir string

	// ProjectConfig is the project config document inside ConfigDir.
	ProjectConfig string

	// UserOutput is the user-merged artifact (personal environment).
	UserOutput string

	// SharedOutput is the project+modules-only artifact (CI, check-in).
	SharedOutput string

	// UserConfig is the machine-local user config document.
	UserConfig string
}

// ProjectPaths resolves all fixed paths for a project directory.
func ProjectPaths(projectDir string, settings Settings) Paths {
	dir := filepath.Join(projectDir, ConfigDirName)
	return Paths{
		ConfigDir:     dir,
		ProjectConfig: filepath.Join(dir, projectConfigName),
		UserOutput:    filepath.Join(dir, userOutputName),
		SharedOutput:  filepath.Join(dir, sharedOutputName),
		UserConfig:    settings.UserConfigPath(),
	}
}

// LoadProject reads and parses the project config document.
//
// The second return value reports whether the file exists at all;
// (nil, false, nil) means the project is not initialized, which the
// orchestrator maps to its NotInitialized terminal state rather than
// an error. Parse and validation failures return a CLIError with
// ExitInvalidConfig.
func LoadProject(fs fsio.FileSystem, path string) (*model.ProjectConfig, bool, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read project config %s: %w", path, err)
	}

	cfg, err := parseProject(data)
	if err != nil {
		return nil, true, model.WrapCLIError(
			model.ExitInvalidConfig,
			fmt.Sprintf("invalid project config %s", path),
			err,
		)
	}
	return cfg, true, nil
}

// parseProject decodes the YAML document with strict field checking, so
// a typoed key fails loudly instead of being silently dropped, then
// applies defaults and validates.
func parseProject(data []byte) (*model.ProjectConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg model.ProjectConfig
	if err := dec.Decode(&cfg); err != nil {
		// An empty document hits io.EOF; treat it like any other
		// malformed input but with a clearer message.
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document is empty")
		}
		return nil, err
	}

	if cfg.Image == "" {
		cfg.Image = DefaultImage
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadUser reads and parses the optional user config document. Absence
// is tolerated and yields (nil, nil) — the merge engine treats a nil
// user config as "no overlay".
func LoadUser(fs fsio.FileSystem, path string) (*model.UserConfig, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg model.UserConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty user config is as good as no user config.
			return nil, nil
		}
		return nil, model.WrapCLIError(
			model.ExitInvalidConfig,
			fmt.Sprintf("invalid user config %s", path),
			err,
		)
	}
	return &cfg, nil
}

// Scaffold returns the initial project config written by `devenv init`.
// The name is deliberately the blocking placeholder: generation refuses
// to run until the user edits it, which prevents half-configured
// projects from producing misleading artifacts.
func Scaffold() []byte {
	return []byte(`# devenv project configuration.
# Change "name" to your project's name to enable generation.
name: ` + model.PlaceholderName + `
image: ` + DefaultImage + `

# Built-in modules to apply, in order. Run "devenv modules" for the catalog.
modules: []

# forwardPorts:
#   - 8080
#   - "8000:9000"

# postCreateCommand:
#   - npm install
`)
}
