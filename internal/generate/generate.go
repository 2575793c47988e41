package generate

import (
	"os"

	"github.com/shinji-kodama/devenv/internal/config"
	"github.com/shinji-kodama/devenv/internal/devcontainer"
	"github.com/shinji-kodama/devenv/internal/fsio"
	"github.com/shinji-kodama/devenv/internal/hooks"
	"github.com/shinji-kodama/devenv/internal/merge"
	"github.com/shinji-kodama/devenv/internal/model"
	"github.com/shinji-kodama/devenv/internal/module"
)

// rendered holds both serialized artifacts after a full resolution
// pass, or the terminal state that cut the pipeline short.
type rendered struct {
	state  model.GenerateState
	user   []byte
	shared []byte
}

// render runs the common resolution pipeline: load project config,
// guard on the two terminal states, load the optional user config,
// resolve modules, merge both variants, append hook commands, and
// serialize. Nothing is written.
func render(fs fsio.FileSystem, paths config.Paths, settings config.Settings) (rendered, error) {
	project, found, err := config.LoadProject(fs, paths.ProjectConfig)
	if err != nil {
		return rendered{}, err
	}
	if !found {
		return rendered{state: model.GenerateNotInitialized}, nil
	}
	if !project.IsCustomized() {
		return rendered{state: model.GenerateConfigNotCustomized}, nil
	}

	user, err := config.LoadUser(fs, paths.UserConfig)
	if err != nil {
		return rendered{}, err
	}

	// All-or-nothing: a single unknown module name aborts before any
	// merging happens.
	contribs, err := module.ResolveAll(project.Modules)
	if err != nil {
		return rendered{}, err
	}

	hookSet, err := hooks.Discover(paths.ConfigDir, settings.DisableHooks)
	if err != nil {
		return rendered{}, err
	}

	sharedResolved := merge.BuildShared(project, contribs)
	userResolved := merge.ApplyUser(sharedResolved, user)

	// Hooks run last, after every merged lifecycle command, and appear
	// identically in both artifacts: hook scripts are part of the
	// checked-in project tree, so the shared output may carry them too.
	appendHooks(&sharedResolved, hookSet)
	appendHooks(&userResolved, hookSet)

	sharedData, err := devcontainer.Serialize(&sharedResolved)
	if err != nil {
		return rendered{}, err
	}
	userData, err := devcontainer.Serialize(&userResolved)
	if err != nil {
		return rendered{}, err
	}

	return rendered{state: model.GenerateSuccess, user: userData, shared: sharedData}, nil
}

// appendHooks adds the discovered hook commands to the end of the
// matching lifecycle command lists.
func appendHooks(resolved *model.ResolvedConfig, set hooks.Set) {
	if set.PostCreate != nil {
		resolved.PostCreateCommands = append(resolved.PostCreateCommands, *set.PostCreate)
	}
	if set.PostStart != nil {
		resolved.PostStartCommands = append(resolved.PostStartCommands, *set.PostStart)
	}
}

// Generate runs the full pipeline and writes both artifacts. Outputs
// are always rewritten, even when the content is unchanged, so the
// files on disk are canonical after every successful run.
func Generate(fs fsio.FileSystem, paths config.Paths, settings config.Settings) (model.GenerateResult, error) {
	r, err := render(fs, paths, settings)
	if err != nil {
		return model.GenerateResult{}, err
	}
	if r.state != model.GenerateSuccess {
		return model.GenerateResult{State: r.state}, nil
	}

	if err := fs.MkdirAll(paths.ConfigDir); err != nil {
		return model.GenerateResult{}, err
	}

	userOutcome, err := writeArtifact(fs, paths.UserOutput, r.user)
	if err != nil {
		return model.GenerateResult{}, err
	}
	sharedOutcome, err := writeArtifact(fs, paths.SharedOutput, r.shared)
	if err != nil {
		return model.GenerateResult{}, err
	}

	return model.GenerateResult{
		State:  model.GenerateSuccess,
		User:   userOutcome,
		Shared: sharedOutcome,
	}, nil
}

// writeArtifact overwrites one output file and reports whether that
// created or updated it.
func writeArtifact(fs fsio.FileSystem, path string, data []byte) (model.FileOutcome, error) {
	existed, err := fs.WriteFile(path, data)
	if err != nil {
		return model.FileOutcome{}, err
	}
	status := model.FileCreated
	if existed {
		status = model.FileUpdated
	}
	return model.FileOutcome{Path: path, Status: status}, nil
}

// Check runs the identical resolution pipeline and compares the
// would-be artifacts byte-for-byte against what is on disk. A missing
// output file counts as drift (its actual content is the empty
// string), not as an error.
func Check(fs fsio.FileSystem, paths config.Paths, settings config.Settings) (model.CheckResult, error) {
	r, err := render(fs, paths, settings)
	if err != nil {
		return model.CheckResult{}, err
	}
	switch r.state {
	case model.GenerateNotInitialized:
		return model.CheckResult{State: model.CheckNotInitialized}, nil
	case model.GenerateConfigNotCustomized:
		return model.CheckResult{State: model.CheckConfigNotCustomized}, nil
	}

	var diffs []model.FileDiff
	for _, target := range []struct {
		path     string
		expected []byte
	}{
		{paths.UserOutput, r.user},
		{paths.SharedOutput, r.shared},
	} {
		actual, err := readOrEmpty(fs, target.path)
		if err != nil {
			return model.CheckResult{}, err
		}
		if string(actual) != string(target.expected) {
			diffs = append(diffs, model.FileDiff{
				Path:     target.path,
				Expected: string(target.expected),
				Actual:   string(actual),
			})
		}
	}

	if len(diffs) > 0 {
		return model.CheckResult{State: model.CheckMismatch, Diffs: diffs}, nil
	}
	return model.CheckResult{State: model.CheckMatch}, nil
}

// readOrEmpty reads a prior output, treating absence as empty content.
func readOrEmpty(fs fsio.FileSystem, path string) ([]byte, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
