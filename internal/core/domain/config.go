package domain

import (
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Toolchain names the three external entry points the orchestrator drives.
type Toolchain struct {
	// Generator produces the build description (configure).
	Generator string
	// Driver executes the build description (build).
	Driver string
	// Tester runs the test suite (test).
	Tester string
}

// DefaultToolchain returns the CMake toolchain.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Generator: "cmake",
		Driver:    "cmake",
		Tester:    "ctest",
	}
}

// Project holds the settings of one project, as loaded from its project file.
// All paths are absolute.
type Project struct {
	Root           string
	SourceDir      string
	BuildDir       string
	ExamplesOption string
	Toolchain      Toolchain
}

// DefaultProject returns the settings used when root has no project file.
func DefaultProject(root string) Project {
	root = filepath.Clean(root)
	return Project{
		Root:           root,
		SourceDir:      root,
		BuildDir:       filepath.Join(root, DefaultBuildDirName),
		ExamplesOption: DefaultExamplesOption,
		Toolchain:      DefaultToolchain(),
	}
}

// BuildOptions are the switches requested on the command line.
type BuildOptions struct {
	Clean    bool
	Test     bool
	Examples bool
	// Jobs is the requested parallelism; zero or less means detect.
	Jobs int
	// BuildDir overrides the project's build directory when set. Must be absolute.
	BuildDir string
}

// BuildConfig is the configuration of a single invocation.
// It is built once by NewBuildConfig and handed to every phase by value.
type BuildConfig struct {
	Clean          bool
	Test           bool
	Examples       bool
	SourceDir      string
	BuildDir       string
	Parallelism    int
	ExamplesOption string
	Toolchain      Toolchain
}

// NewBuildConfig combines command line options with project settings.
func NewBuildConfig(opts BuildOptions, project Project) (BuildConfig, error) {
	buildDir := project.BuildDir
	if opts.BuildDir != "" {
		buildDir = opts.BuildDir
	}

	cfg := BuildConfig{
		Clean:          opts.Clean,
		Test:           opts.Test,
		Examples:       opts.Examples,
		SourceDir:      filepath.Clean(project.SourceDir),
		BuildDir:       filepath.Clean(buildDir),
		Parallelism:    ResolveParallelism(opts.Jobs, runtime.NumCPU()),
		ExamplesOption: project.ExamplesOption,
		Toolchain:      project.Toolchain,
	}
	if cfg.ExamplesOption == "" {
		cfg.ExamplesOption = DefaultExamplesOption
	}

	if err := validateBuildDir(cfg.SourceDir, cfg.BuildDir); err != nil {
		return BuildConfig{}, err
	}
	return cfg, nil
}

// ResolveParallelism picks the requested job count, falling back to the
// detected core count, and never returns less than 1.
func ResolveParallelism(requested, detected int) int {
	n := requested
	if n <= 0 {
		n = detected
	}
	return max(n, 1)
}

// validateBuildDir rejects build directories whose removal would take the sources with them.
func validateBuildDir(sourceDir, buildDir string) error {
	if buildDir == "" || buildDir == filepath.Dir(buildDir) {
		return zerr.With(zerr.Wrap(ErrUnsafeBuildDir, "build directory is a filesystem root"), "build_dir", buildDir)
	}
	if buildDir == sourceDir || isWithin(sourceDir, buildDir) {
		err := zerr.Wrap(ErrUnsafeBuildDir, "build directory contains the sources")
		err = zerr.With(err, "build_dir", buildDir)
		return zerr.With(err, "source_dir", sourceDir)
	}
	return nil
}

// isWithin reports whether path lies inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
