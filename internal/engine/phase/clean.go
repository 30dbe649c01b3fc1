package phase

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Clean removes the build directory.
type Clean struct {
	workspace ports.Workspace
	out       io.Writer
}

// NewClean creates a new Clean phase reporting to out.
func NewClean(workspace ports.Workspace, out io.Writer) *Clean {
	return &Clean{workspace: workspace, out: out}
}

// Kind returns domain.PhaseClean.
func (p *Clean) Kind() domain.PhaseKind {
	return domain.PhaseClean
}

// Execute removes the build directory. A missing directory is not an error.
func (p *Clean) Execute(_ context.Context, cfg domain.BuildConfig) error {
	exists, err := p.workspace.Exists(cfg.BuildDir)
	if err != nil {
		return asIOError("stat", cfg.BuildDir, err)
	}
	if !exists {
		_, _ = fmt.Fprintln(p.out, ">>> Nothing to clean")
		return nil
	}

	if err := p.workspace.RemoveAll(cfg.BuildDir); err != nil {
		return asIOError("remove", cfg.BuildDir, err)
	}
	_, _ = fmt.Fprintf(p.out, ">>> Removed %s\n", cfg.BuildDir)
	return nil
}
