package phase

import (
	"context"
	"strconv"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Configure generates the build description in the build directory.
type Configure struct {
	executor  ports.Executor
	workspace ports.Workspace
}

// NewConfigure creates a new Configure phase.
func NewConfigure(executor ports.Executor, workspace ports.Workspace) *Configure {
	return &Configure{executor: executor, workspace: workspace}
}

// Kind returns domain.PhaseConfigure.
func (p *Configure) Kind() domain.PhaseKind {
	return domain.PhaseConfigure
}

// Execute creates the build directory if needed and runs the generator.
func (p *Configure) Execute(ctx context.Context, cfg domain.BuildConfig) error {
	if err := p.workspace.EnsureDir(cfg.BuildDir); err != nil {
		return asIOError("mkdir", cfg.BuildDir, err)
	}
	return p.executor.Run(ctx, ConfigureInvocation(cfg))
}

// ConfigureInvocation returns the generator command for cfg.
func ConfigureInvocation(cfg domain.BuildConfig) domain.Invocation {
	args := []string{
		"-S", cfg.SourceDir,
		"-B", cfg.BuildDir,
		"-DCMAKE_BUILD_TYPE=" + domain.BuildType,
	}
	if cfg.Examples {
		args = append(args, "-D"+cfg.ExamplesOption+"=ON")
	}
	return domain.NewInvocation(cfg.BuildDir, cfg.Toolchain.Generator, args...)
}

// Build compiles the configured tree.
type Build struct {
	executor ports.Executor
}

// NewBuild creates a new Build phase.
func NewBuild(executor ports.Executor) *Build {
	return &Build{executor: executor}
}

// Kind returns domain.PhaseBuild.
func (p *Build) Kind() domain.PhaseKind {
	return domain.PhaseBuild
}

// Execute runs the build driver. It does not check that Configure ran first.
func (p *Build) Execute(ctx context.Context, cfg domain.BuildConfig) error {
	return p.executor.Run(ctx, BuildInvocation(cfg))
}

// BuildInvocation returns the build driver command for cfg.
func BuildInvocation(cfg domain.BuildConfig) domain.Invocation {
	return domain.NewInvocation(cfg.BuildDir, cfg.Toolchain.Driver,
		"--build", cfg.BuildDir,
		"--parallel", strconv.Itoa(cfg.Parallelism),
	)
}

// Test runs the project's test suite.
type Test struct {
	executor ports.Executor
}

// NewTest creates a new Test phase.
func NewTest(executor ports.Executor) *Test {
	return &Test{executor: executor}
}

// Kind returns domain.PhaseTest.
func (p *Test) Kind() domain.PhaseKind {
	return domain.PhaseTest
}

// Execute runs the test runner.
func (p *Test) Execute(ctx context.Context, cfg domain.BuildConfig) error {
	return p.executor.Run(ctx, TestInvocation(cfg))
}

// TestInvocation returns the test runner command for cfg.
func TestInvocation(cfg domain.BuildConfig) domain.Invocation {
	return domain.NewInvocation(cfg.BuildDir, cfg.Toolchain.Tester, "--output-on-failure")
}
