package model

import "fmt"

// ExitCode defines the CLI exit codes. These allow scripts and CI
// systems to programmatically distinguish outcomes — in particular,
// `devenv check` uses ExitDriftDetected so a pipeline can fail on
// stale generated files.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitNotInitialized indicates no project config file was found.
	ExitNotInitialized ExitCode = 2

	// ExitConfigNotCustomized indicates the project name still equals
	// the init placeholder.
	ExitConfigNotCustomized ExitCode = 3

	// ExitInvalidConfig indicates malformed input: unparsable YAML, a
	// port outside 1-65535, or a schema violation.
	ExitInvalidConfig ExitCode = 4

	// ExitUnknownModule indicates the project config references a module
	// name that is not in the built-in catalog.
	ExitUnknownModule ExitCode = 5

	// ExitDriftDetected indicates `check` found generated files that no
	// longer match current configuration.
	ExitDriftDetected ExitCode = 6

	// ExitDockerNotRunning indicates the Docker daemon is not
	// accessible (used by `devenv list`).
	ExitDockerNotRunning ExitCode = 7
)

// CLIError is a custom error type that carries an exit code, allowing
// the CLI layer to translate domain errors into process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
