package fsio

import (
	"fmt"
	"os"
)

// FileSystem is the collaborator interface for config and artifact I/O.
//
// Not-found handling is deliberately asymmetric: ReadFile reports
// absence through os.IsNotExist-compatible errors (callers decide
// whether absence is tolerated), while WriteFile reports whether the
// file existed before the write so the orchestrator can distinguish
// Created from Updated without an extra Stat.
type FileSystem interface {
	// ReadFile returns the file's contents. The error satisfies
	// os.IsNotExist when the file is absent.
	ReadFile(path string) ([]byte, error)

	// WriteFile overwrites the file with data, reporting whether the
	// file existed before the write.
	WriteFile(path string, data []byte) (existedBefore bool, err error)

	// MkdirAll creates the directory and any missing parents. A no-op
	// when the directory already exists.
	MkdirAll(path string) error
}

// OS is the production FileSystem backed by the os package.
type OS struct{}

// ReadFile reads the file via os.ReadFile.
func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile stats the target first to report pre-existence, then
// overwrites it with 0644 permissions (the standard mode for
// non-executable config files).
func (OS) WriteFile(path string, data []byte) (bool, error) {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return existed, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return existed, nil
}

// MkdirAll creates the directory tree with 0755 permissions.
func (OS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
