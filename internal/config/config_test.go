package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/model"
)

// writeFile is a test helper that writes a file under dir, creating
// parents as needed.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- LoadProject tests ---

// TestLoadProject_Full verifies a representative project config parses
// with all field shapes intact.
func TestLoadProject_Full(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devenv.yaml", `
name: My Real Project
image: ubuntu:24.04
modules:
  - apt-updates
  - mise
forwardPorts:
  - 8080
  - "8000:9000"
remoteEnv:
  EDITOR: vim
plugins:
  vscode: [golang.go]
  jetbrains: [org.example.plugin]
mounts:
  - source: /tmp/cache
    target: /cache
    type: bind
postCreateCommand:
  - go mod download
remoteUser: vscode
capAdd: [SYS_PTRACE]
`)

	cfg, found, err := LoadProject(fsio.OS{}, path)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "My Real Project", cfg.Name)
	assert.Equal(t, "ubuntu:24.04", cfg.Image)
	assert.Equal(t, []string{"apt-updates", "mise"}, cfg.Modules)
	assert.Equal(t, []model.PortForward{{Host: 8080, Container: 8080}, {Host: 8000, Container: 9000}}, cfg.ForwardPorts)
	assert.Equal(t, model.EnvVars{{Name: "EDITOR", Value: "vim"}}, cfg.RemoteEnv)
	assert.Equal(t, []string{"golang.go"}, cfg.Plugins.VSCode)
	require.Len(t, cfg.Mounts, 1)
	assert.Equal(t, "/cache", cfg.Mounts[0].Target)
	assert.Equal(t, []model.Command{{Cmd: "go mod download", WorkingDirectory: "."}}, cfg.PostCreateCommands)
	assert.Equal(t, "vscode", cfg.RemoteUser)
	assert.Equal(t, []string{"SYS_PTRACE"}, cfg.CapAdd)
}

// TestLoadProject_Absent verifies the (nil, false, nil) contract for a
// missing project config — absence is a state, not an error.
func TestLoadProject_Absent(t *testing.T) {
	cfg, found, err := LoadProject(fsio.OS{}, filepath.Join(t.TempDir(), "devenv.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cfg)
}

// TestLoadProject_DefaultImage verifies the image default is applied
// when the document omits it.
func TestLoadProject_DefaultImage(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devenv.yaml", "name: demo\n")

	cfg, found, err := LoadProject(fsio.OS{}, path)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, DefaultImage, cfg.Image)
}

// TestLoadProject_UnknownField verifies strict decoding: a typoed key
// fails the load instead of being silently ignored.
func TestLoadProject_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devenv.yaml", "name: demo\nmoduls: [mise]\n")

	_, found, err := LoadProject(fsio.OS{}, path)
	require.Error(t, err)
	assert.True(t, found)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInvalidConfig, cliErr.Code)
}

// TestLoadProject_InvalidPort verifies an out-of-range port fails the
// whole load with ExitInvalidConfig.
func TestLoadProject_InvalidPort(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devenv.yaml", "name: demo\nforwardPorts: [99999]\n")

	_, _, err := LoadProject(fsio.OS{}, path)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInvalidConfig, cliErr.Code)
}

// TestLoadProject_EmptyDocument verifies an empty file is rejected as
// malformed rather than producing a zero-value config.
func TestLoadProject_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devenv.yaml", "")

	_, _, err := LoadProject(fsio.OS{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

// --- LoadUser tests ---

// TestLoadUser_Absent verifies absent user config yields (nil, nil) —
// tolerated, never an error.
func TestLoadUser_Absent(t *testing.T) {
	cfg, err := LoadUser(fsio.OS{}, filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

// TestLoadUser_Full verifies plugins and the dotfiles spec parse.
func TestLoadUser_Full(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
plugins:
  vscode: [vim.vim]
dotfiles:
  repository: https://example.com/dotfiles.git
  targetPath: ~/dotfiles
  installCommand: ./install.sh
`)

	cfg, err := LoadUser(fsio.OS{}, path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"vim.vim"}, cfg.Plugins.VSCode)
	require.NotNil(t, cfg.Dotfiles)
	assert.Equal(t, "https://example.com/dotfiles.git", cfg.Dotfiles.Repository)
	assert.Equal(t, "~/dotfiles", cfg.Dotfiles.TargetPath)
	assert.Equal(t, "./install.sh", cfg.Dotfiles.InstallCommand)
}

// --- Settings tests ---

// TestLoadSettings_EnvOverride verifies DEVENV_CONFIG_DIR wins over
// the platform default.
func TestLoadSettings_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DEVENV_CONFIG_DIR", dir)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, dir, s.UserConfigDir)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), s.UserConfigPath())
}

// TestLoadSettings_DisableHooks verifies the hook kill switch parses.
func TestLoadSettings_DisableHooks(t *testing.T) {
	t.Setenv("DEVENV_CONFIG_DIR", t.TempDir())
	t.Setenv("DEVENV_DISABLE_HOOKS", "true")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, s.DisableHooks)
}

// --- Scaffold / Paths tests ---

// TestScaffold_ParsesAsPlaceholder verifies the init scaffold parses
// cleanly and carries the blocking placeholder name.
func TestScaffold_ParsesAsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "devenv.yaml", string(Scaffold()))

	cfg, found, err := LoadProject(fsio.OS{}, path)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, cfg.IsCustomized())
	assert.Equal(t, DefaultImage, cfg.Image)
}

// TestProjectPaths verifies the fixed relative layout.
func TestProjectPaths(t *testing.T) {
	settings := Settings{UserConfigDir: "/home/dev/.config/devenv"}
	paths := ProjectPaths("/work/proj", settings)

	assert.Equal(t, filepath.Join("/work/proj", ".devcontainer"), paths.ConfigDir)
	assert.Equal(t, filepath.Join("/work/proj", ".devcontainer", "devenv.yaml"), paths.ProjectConfig)
	assert.Equal(t, filepath.Join("/work/proj", ".devcontainer", "devcontainer.json"), paths.UserOutput)
	assert.Equal(t, filepath.Join("/work/proj", ".devcontainer", "devcontainer.shared.json"), paths.SharedOutput)
	assert.Equal(t, filepath.Join("/home/dev/.config/devenv", "config.yaml"), paths.UserConfig)
}
