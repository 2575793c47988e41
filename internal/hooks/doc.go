// Package hooks discovers project hook scripts under
// .devcontainer/hooks/ and turns them into lifecycle commands.
//
// Two hook names are recognized: post-create and post-start. A hook
// participates only when the file exists and is executable; a
// non-executable file is reported as an error because it is almost
// always a forgotten chmod rather than an intentional opt-out.
package hooks
