// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// Executor defines the interface for running one external toolchain command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run echoes the command line, runs the command with inherited standard
	// streams and blocks until it terminates.
	//
	// It returns a *domain.LaunchError if the command could not be started and a
	// *domain.ProcessError if it did not exit cleanly.
	Run(ctx context.Context, inv domain.Invocation) error
}
