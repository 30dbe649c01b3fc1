package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrLaunchFailed is returned when an external command cannot be started at all.
	ErrLaunchFailed = zerr.New("failed to launch command")

	// ErrProcessFailed is returned when an external command ran and did not exit cleanly.
	ErrProcessFailed = zerr.New("command failed")

	// ErrIO is returned when the orchestrator's own filesystem work fails.
	ErrIO = zerr.New("filesystem operation failed")

	// ErrUnsafeBuildDir is returned when the build directory would overlap the project sources.
	ErrUnsafeBuildDir = zerr.New("refusing to use unsafe build directory")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrUnsupportedVersion is returned when the project file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported project file version")

	// ErrUnknownPhase is returned when a plan names a phase that has no implementation.
	ErrUnknownPhase = zerr.New("unknown phase")
)

// LaunchError reports a command that could not be started (not found, permission denied).
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrLaunchFailed.Error(), e.Command, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunchFailed, e.Err}
}

// ProcessError reports a command that ran and terminated unsuccessfully.
// Signaled is set when the child did not exit on its own; Code then holds ExitSignaled.
type ProcessError struct {
	Command  string
	Code     int
	Signaled bool
}

func (e *ProcessError) Error() string {
	if e.Signaled {
		return fmt.Sprintf("%s: %s: terminated abnormally", ErrProcessFailed.Error(), e.Command)
	}
	return fmt.Sprintf("%s: %s: exit status %d", ErrProcessFailed.Error(), e.Command, e.Code)
}

func (e *ProcessError) Unwrap() error {
	return ErrProcessFailed
}

// IOError reports a failed filesystem operation on Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrIO.Error(), e.Op, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// ConfigError reports a project file that could not be read or parsed.
// Kind is ErrConfigReadFailed or ErrConfigParseFailed.
type ConfigError struct {
	Kind error
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind.Error(), e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *ConfigError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
