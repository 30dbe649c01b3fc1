// Package app implements the application layer for forge.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes the phases planned for a build configuration.
type Runner interface {
	Run(ctx context.Context, cfg domain.BuildConfig) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       Runner
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Clean    bool
	Test     bool
	Examples bool
	// Jobs overrides the detected core count when positive.
	Jobs int
	// BuildDir overrides the project's build directory. Relative paths are
	// resolved against WorkDir.
	BuildDir string
	// ConfigPath names the project file explicitly instead of discovering it.
	ConfigPath string
	Verbose    bool
	// WorkDir is the directory the build was started from. Defaults to the
	// process working directory.
	WorkDir string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner Runner, telemetry ports.Telemetry, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Run loads the project settings, derives the build configuration and runs
// the planned phases. The returned error is the first failure of the run.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	a.logger.SetVerbose(opts.Verbose)
	defer a.closeTelemetry()

	cfg, err := a.buildConfig(opts)
	if err != nil {
		return err
	}

	if err := a.runner.Run(ctx, cfg); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}

func (a *App) buildConfig(opts RunOptions) (domain.BuildConfig, error) {
	cwd := opts.WorkDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.BuildConfig{}, &domain.IOError{Op: "getwd", Path: ".", Err: err}
		}
		cwd = wd
	}

	project, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return domain.BuildConfig{}, zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.Debug(fmt.Sprintf("project root %s", project.Root))

	buildDir := opts.BuildDir
	if buildDir != "" && !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(cwd, buildDir)
	}

	cfg, err := domain.NewBuildConfig(domain.BuildOptions{
		Clean:    opts.Clean,
		Test:     opts.Test,
		Examples: opts.Examples,
		Jobs:     opts.Jobs,
		BuildDir: buildDir,
	}, project)
	if err != nil {
		return domain.BuildConfig{}, zerr.Wrap(err, "invalid build configuration")
	}

	a.logger.Debug(fmt.Sprintf("source %s, build %s, parallelism %d", cfg.SourceDir, cfg.BuildDir, cfg.Parallelism))
	return cfg, nil
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
	}
}
