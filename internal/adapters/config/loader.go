// Package config provides the project settings loader for forge.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML project file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the project settings governing cwd.
//
// With an explicit path that file must exist. Otherwise the nearest
// forge.yaml in cwd or one of its parents is used; without one, cwd itself
// is the project root and the defaults apply.
func (l *Loader) Load(cwd, path string) (domain.Project, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Project{}, zerr.Wrap(err, "failed to resolve working directory")
	}

	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		return l.loadForgefile(filepath.Clean(path))
	}

	configPath, found := findForgefile(cwd)
	if !found {
		l.Logger.Debug("no " + domain.ProjectFileName + " found, using " + cwd + " as project root")
		return domain.DefaultProject(cwd), nil
	}
	return l.loadForgefile(configPath)
}

func findForgefile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadForgefile(configPath string) (domain.Project, error) {
	var forgefile Forgefile
	if err := readAndUnmarshalYAML(configPath, &forgefile); err != nil {
		return domain.Project{}, err
	}

	if forgefile.Version != domain.ProjectFileVersion {
		err := zerr.Wrap(domain.ErrUnsupportedVersion, "invalid project file")
		err = zerr.With(err, "version", forgefile.Version)
		return domain.Project{}, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug("loaded project file " + configPath)

	root := filepath.Dir(configPath)
	project := domain.DefaultProject(root)
	project.SourceDir = resolvePath(root, forgefile.Source, project.SourceDir)
	project.BuildDir = resolvePath(root, forgefile.Build, project.BuildDir)
	if forgefile.ExamplesOption != "" {
		project.ExamplesOption = forgefile.ExamplesOption
	}
	if tc := forgefile.Toolchain; tc != nil {
		project.Toolchain = mergeToolchain(project.Toolchain, *tc)
	}
	return project, nil
}

// resolvePath resolves a configured path relative to the project root.
func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		return fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

func mergeToolchain(base domain.Toolchain, dto ToolchainDTO) domain.Toolchain {
	if dto.Generator != "" {
		base.Generator = dto.Generator
	}
	if dto.Driver != "" {
		base.Driver = dto.Driver
	}
	if dto.Tester != "" {
		base.Tester = dto.Tester
	}
	return base
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user or found by discovery
	data, err := os.ReadFile(configPath)
	if err != nil {
		return &domain.ConfigError{Kind: domain.ErrConfigReadFailed, Path: configPath, Err: err}
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return &domain.ConfigError{Kind: domain.ErrConfigParseFailed, Path: configPath, Err: err}
	}
	return nil
}
