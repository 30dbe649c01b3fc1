package domain_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestResolveParallelism(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		detected  int
		expected  int
	}{
		{"explicit", 6, 16, 6},
		{"detected when unset", 0, 12, 12},
		{"detected when negative", -3, 4, 4},
		{"clamped detection", 0, 0, 1},
		{"explicit one", 1, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ResolveParallelism(tt.requested, tt.detected))
		})
	}
}

func TestNewBuildConfig_Defaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := domain.NewBuildConfig(domain.BuildOptions{Test: true}, domain.DefaultProject(root))
	require.NoError(t, err)

	assert.True(t, cfg.Test)
	assert.False(t, cfg.Clean)
	assert.False(t, cfg.Examples)
	assert.Equal(t, filepath.Clean(root), cfg.SourceDir)
	assert.Equal(t, filepath.Join(root, "build"), cfg.BuildDir)
	assert.Equal(t, max(runtime.NumCPU(), 1), cfg.Parallelism)
	assert.Equal(t, domain.DefaultExamplesOption, cfg.ExamplesOption)
	assert.Equal(t, domain.DefaultToolchain(), cfg.Toolchain)
}

func TestNewBuildConfig_Overrides(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	project := domain.DefaultProject(root)
	project.ExamplesOption = ""

	cfg, err := domain.NewBuildConfig(domain.BuildOptions{Jobs: 3, BuildDir: out}, project)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Parallelism)
	assert.Equal(t, out, cfg.BuildDir)
	assert.Equal(t, domain.DefaultExamplesOption, cfg.ExamplesOption)
}

func TestNewBuildConfig_UnsafeBuildDir(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		buildDir string
	}{
		{"same as sources", root},
		{"parent of sources", filepath.Dir(root)},
		{"filesystem root", string(filepath.Separator)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewBuildConfig(domain.BuildOptions{BuildDir: tt.buildDir}, domain.DefaultProject(root))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnsafeBuildDir))

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.buildDir, zErr.Metadata()["build_dir"])
		})
	}
}

func TestNewBuildConfig_BuildDirBesideSources(t *testing.T) {
	root := t.TempDir()
	sibling := root + "-build"

	cfg, err := domain.NewBuildConfig(domain.BuildOptions{BuildDir: sibling}, domain.DefaultProject(root))
	require.NoError(t, err)
	assert.Equal(t, sibling, cfg.BuildDir)
}
