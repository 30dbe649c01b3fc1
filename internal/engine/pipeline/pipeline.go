// Package pipeline runs the planned phases of a build in order.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/phase"
	"go.trai.ch/zerr"
)

// Pipeline executes a build plan one phase at a time.
type Pipeline struct {
	phases    *phase.Set
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(phases *phase.Set, telemetry ports.Telemetry, logger ports.Logger) *Pipeline {
	return &Pipeline{
		phases:    phases,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run plans the phases for cfg and executes them strictly in order.
// It stops at the first failing phase and returns its error annotated with the phase name.
func (p *Pipeline) Run(ctx context.Context, cfg domain.BuildConfig) error {
	plan := domain.Plan(cfg)
	p.logger.Debug(fmt.Sprintf("plan: %s", formatPlan(plan)))

	for _, kind := range plan {
		// Never start a phase after an interrupt.
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, "build interrupted"), "phase", kind.String())
		}

		if err := p.runPhase(ctx, kind, cfg); err != nil {
			return zerr.With(zerr.Wrap(err, "phase failed"), "phase", kind.String())
		}
	}
	return nil
}

func (p *Pipeline) runPhase(ctx context.Context, kind domain.PhaseKind, cfg domain.BuildConfig) error {
	ph, err := p.phases.Lookup(kind)
	if err != nil {
		return err
	}

	ctx, vertex := p.telemetry.Record(ctx, kind.String())
	vertex.Log(fmt.Sprintf("build dir %s", cfg.BuildDir))

	p.logger.Debug(fmt.Sprintf("starting phase %s", kind))
	err = ph.Execute(ctx, cfg)
	vertex.Complete(err)
	if err != nil {
		return err
	}
	p.logger.Debug(fmt.Sprintf("finished phase %s", kind))
	return nil
}

func formatPlan(plan []domain.PhaseKind) string {
	names := make([]string, len(plan))
	for i, kind := range plan {
		names[i] = kind.String()
	}
	return strings.Join(names, " -> ")
}
