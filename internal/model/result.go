package model

import (
	"fmt"
	"strings"
)

// FileStatus describes what happened to a single output file during a
// successful generate operation.
type FileStatus string

const (
	// FileCreated indicates the file did not exist before the write.
	FileCreated FileStatus = "created"

	// FileUpdated indicates the file existed and was overwritten.
	// generate always rewrites both outputs, so "updated" does not imply
	// the content actually changed.
	FileUpdated FileStatus = "updated"
)

// String satisfies fmt.Stringer for CLI output.
func (s FileStatus) String() string {
	return string(s)
}

// IsValid checks whether the FileStatus is one of the defined values.
func (s FileStatus) IsValid() bool {
	switch s {
	case FileCreated, FileUpdated:
		return true
	default:
		return false
	}
}

// GenerateState is the tag of the GenerateResult variant. The generate
// pipeline is a sequence of guard clauses: the first terminal state
// encountered is returned, and nothing is resolved or written past it.
type GenerateState string

const (
	// GenerateNotInitialized means no project config file exists.
	// Terminal; nothing is written.
	GenerateNotInitialized GenerateState = "not-initialized"

	// GenerateConfigNotCustomized means the project name still equals
	// the init placeholder. Terminal; nothing is written.
	GenerateConfigNotCustomized GenerateState = "config-not-customized"

	// GenerateSuccess means both output files were written.
	GenerateSuccess GenerateState = "success"
)

// String satisfies fmt.Stringer.
func (s GenerateState) String() string {
	return string(s)
}

// FileOutcome pairs an output path with its per-file write status.
type FileOutcome struct {
	// Path is the output file path, relative to the project directory.
	Path string `json:"path"`

	// Status is created or updated.
	Status FileStatus `json:"status"`
}

// GenerateResult is the tagged result of a generate operation. User and
// Shared are only meaningful when State is GenerateSuccess.
type GenerateResult struct {
	State  GenerateState `json:"state"`
	User   FileOutcome   `json:"user,omitzero"`
	Shared FileOutcome   `json:"shared,omitzero"`
}

// CheckState is the tag of the CheckResult variant.
type CheckState string

const (
	// CheckNotInitialized mirrors GenerateNotInitialized: there is no
	// project config, so there is nothing to compare against.
	CheckNotInitialized CheckState = "not-initialized"

	// CheckConfigNotCustomized mirrors GenerateConfigNotCustomized.
	CheckConfigNotCustomized CheckState = "config-not-customized"

	// CheckMatch means both output files byte-match the freshly
	// recomputed expected content.
	CheckMatch CheckState = "match"

	// CheckMismatch means at least one output file differs from what
	// current configuration would generate.
	CheckMismatch CheckState = "mismatch"
)

// String satisfies fmt.Stringer.
func (s CheckState) String() string {
	return string(s)
}

// FileDiff describes one drifted output file. Actual is the empty
// string when the file is missing on disk — a missing prior output is
// drift, never an error.
type FileDiff struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// CheckResult is the tagged result of a check operation. Diffs is
// populated only when State is CheckMismatch, with one entry per
// drifted file.
type CheckResult struct {
	State CheckState `json:"state"`
	Diffs []FileDiff `json:"diffs,omitempty"`
}

// DriftedPaths returns the paths of all drifted files, for compact
// presentation in error messages and CI logs.
func (r CheckResult) DriftedPaths() string {
	paths := make([]string, 0, len(r.Diffs))
	for _, d := range r.Diffs {
		paths = append(paths, d.Path)
	}
	return strings.Join(paths, ", ")
}

// Summary returns a one-line human-readable description of the result.
func (r CheckResult) Summary() string {
	switch r.State {
	case CheckMatch:
		return "generated files are up to date"
	case CheckMismatch:
		return fmt.Sprintf("drift detected in: %s", r.DriftedPaths())
	case CheckNotInitialized:
		return "project is not initialized (no devenv.yaml)"
	case CheckConfigNotCustomized:
		return "project config has not been customized yet"
	default:
		return string(r.State)
	}
}
