// Package shell provides the process runner adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// tracePrefix marks the echoed command lines in the progress trace.
const tracePrefix = ">>> "

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor whose children inherit the standard streams of this process.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams returns a copy of the Executor that attaches children, and the
// progress trace, to the given streams.
func (e *Executor) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{
		logger: e.logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run echoes the command line, then runs the command and waits for it to terminate.
// The child's output is never buffered or inspected.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) error {
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "command not started"), "command", inv.String())
	}

	_, _ = fmt.Fprintln(e.stdout, tracePrefix+inv.String())

	// The child is not tied to ctx: an interrupt reaches it through the
	// process group, and the orchestrator still waits for it to exit.
	cmd := exec.Command(inv.Command, inv.Args...) //nolint:gosec // toolchain command from project settings
	cmd.Dir = inv.Dir
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		return &domain.LaunchError{Command: inv.Command, Err: err}
	}
	e.logger.Debug(fmt.Sprintf("started %s (pid %d) in %s", inv.Command, cmd.Process.Pid, inv.Dir))

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return zerr.With(zerr.Wrap(err, "failed waiting for command"), "command", inv.String())
		}

		// ExitCode is -1 when the child was killed by a signal.
		code := exitErr.ExitCode()
		if code < 0 {
			return &domain.ProcessError{Command: inv.String(), Code: domain.ExitSignaled, Signaled: true}
		}
		return &domain.ProcessError{Command: inv.String(), Code: code}
	}

	e.logger.Debug(fmt.Sprintf("%s exited successfully", inv.Command))
	return nil
}
