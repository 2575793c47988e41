// Package config locates and parses the two configuration documents:
//
//   - the project config at .devcontainer/devenv.yaml, checked into
//     version control, and
//   - the optional user config at $XDG_CONFIG_HOME/devenv/config.yaml
//     (overridable via DEVENV_CONFIG_DIR), which never leaves the
//     developer's machine.
//
// It also resolves process-level settings from environment variables
// and provides the `devenv init` scaffold.
package config
