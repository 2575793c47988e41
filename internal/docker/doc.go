// Package docker provides a thin wrapper around the Docker Engine SDK
// for discovering containers that were launched from devenv-generated
// configurations.
//
// Generated devcontainer.json files carry identification labels in
// their runArgs (see BuildRunArgs). Any container started from such a
// config is therefore tagged with "com.devenv.managed=true", which this
// package uses for server-side label filtering when listing containers.
package docker
