package hooks

import (
	"os"
	"path"
	"path/filepath"

	"github.com/shinji-kodama/devenv/internal/config"
	"github.com/shinji-kodama/devenv/internal/model"
)

// Hook script names under .devcontainer/hooks/.
const (
	DirName    = "hooks"
	PostCreate = "post-create"
	PostStart  = "post-start"
)

// Set holds the discovered hook commands. A nil field means the hook
// script does not exist (or discovery was disabled).
type Set struct {
	PostCreate *model.Command
	PostStart  *model.Command
}

// Discover looks for the two hook scripts under configDir (the
// project's .devcontainer directory). When disabled is set, discovery
// is skipped entirely and an empty Set is returned.
//
// The returned commands reference the script by its workspace-relative
// path, because the hooks directory is part of the checked-in project
// tree and therefore present inside the container at the same place.
func Discover(configDir string, disabled bool) (Set, error) {
	if disabled {
		return Set{}, nil
	}

	var set Set
	hooksDir := filepath.Join(configDir, DirName)

	for _, name := range []string{PostCreate, PostStart} {
		cmd, err := discoverOne(hooksDir, name)
		if err != nil {
			return Set{}, err
		}
		switch name {
		case PostCreate:
			set.PostCreate = cmd
		case PostStart:
			set.PostStart = cmd
		}
	}
	return set, nil
}

// discoverOne checks a single hook script. Absence yields (nil, nil);
// an existing but non-executable script is an error so the user learns
// about the missing chmod instead of silently losing the hook.
func discoverOne(hooksDir, name string) (*model.Command, error) {
	scriptPath := filepath.Join(hooksDir, name)

	info, err := os.Stat(scriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, model.WrapCLIError(
			model.ExitGeneralError,
			"failed to inspect hook script "+scriptPath,
			err,
		)
	}
	if info.IsDir() {
		return nil, model.NewCLIError(
			model.ExitInvalidConfig,
			"hook "+scriptPath+" is a directory, expected an executable script",
		)
	}
	if info.Mode()&0o111 == 0 {
		return nil, model.NewCLIError(
			model.ExitInvalidConfig,
			"hook "+scriptPath+" is not executable (chmod +x to enable it)",
		)
	}

	// The in-container path uses forward slashes regardless of the host
	// platform.
	cmd := model.Command{
		Cmd:              "./" + path.Join(config.ConfigDirName, DirName, name),
		WorkingDirectory: ".",
	}
	return &cmd, nil
}
