// Package phase implements the four build phases: clean, configure, build and test.
package phase

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Phase is one step of a build run.
type Phase interface {
	// Kind identifies the phase.
	Kind() domain.PhaseKind
	// Execute runs the phase against cfg and returns its first failure.
	Execute(ctx context.Context, cfg domain.BuildConfig) error
}

// Set holds one Phase per kind.
type Set struct {
	phases map[domain.PhaseKind]Phase
}

// NewSet creates a Set from phases. A later phase replaces an earlier one of the same kind.
func NewSet(phases ...Phase) *Set {
	s := &Set{phases: make(map[domain.PhaseKind]Phase, len(phases))}
	for _, p := range phases {
		s.phases[p.Kind()] = p
	}
	return s
}

// NewDefaultSet returns the standard clean, configure, build and test phases.
func NewDefaultSet(executor ports.Executor, workspace ports.Workspace, out io.Writer) *Set {
	return NewSet(
		NewClean(workspace, out),
		NewConfigure(executor, workspace),
		NewBuild(executor),
		NewTest(executor),
	)
}

// Lookup returns the phase implementing kind.
func (s *Set) Lookup(kind domain.PhaseKind) (Phase, error) {
	p, ok := s.phases[kind]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownPhase, "no phase registered"), "phase", kind.String())
	}
	return p, nil
}

// asIOError makes sure a workspace failure carries the IO error kind.
func asIOError(op, path string, err error) error {
	if errors.Is(err, domain.ErrIO) {
		return err
	}
	return &domain.IOError{Op: op, Path: path, Err: err}
}
