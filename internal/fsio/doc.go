// Package fsio defines the filesystem collaborator interface the
// generation orchestrator depends on, plus the OS-backed
// implementation used in production.
//
// The core never touches the os package directly for config and output
// files; it goes through FileSystem so the read/write/existed-before
// semantics stay in one place.
package fsio
