package domain

import "errors"

const (
	// ExitSuccess is the exit code of a fully successful run.
	ExitSuccess = 0

	// ExitFailure is the exit code for orchestrator-side failures (IO, configuration).
	ExitFailure = 1

	// ExitLaunchFailed is the exit code used when a toolchain command could not be started.
	ExitLaunchFailed = 127

	// ExitSignaled is the exit code used when a toolchain command terminated abnormally.
	ExitSignaled = 128
)

// ExitOutcome is the terminal state of one invocation.
type ExitOutcome struct {
	Code int
}

// Success reports whether the invocation finished without error.
func (o ExitOutcome) Success() bool {
	return o.Code == ExitSuccess
}

// OutcomeOf maps the first error of a run to the process exit code.
// A failing child's own exit code is passed through verbatim.
func OutcomeOf(err error) ExitOutcome {
	if err == nil {
		return ExitOutcome{Code: ExitSuccess}
	}

	var procErr *ProcessError
	if errors.As(err, &procErr) {
		if procErr.Signaled || procErr.Code <= 0 {
			return ExitOutcome{Code: ExitSignaled}
		}
		return ExitOutcome{Code: procErr.Code}
	}

	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return ExitOutcome{Code: ExitLaunchFailed}
	}

	return ExitOutcome{Code: ExitFailure}
}

// IsReported reports whether the error's diagnostics were already shown to the user
// by the child process itself, so the orchestrator must not print anything further.
func IsReported(err error) bool {
	return errors.Is(err, ErrProcessFailed)
}
