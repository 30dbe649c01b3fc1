package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/core/domain"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		cfg      domain.BuildConfig
		expected []domain.PhaseKind
	}{
		{
			name:     "no flags",
			cfg:      domain.BuildConfig{},
			expected: []domain.PhaseKind{domain.PhaseConfigure, domain.PhaseBuild},
		},
		{
			name:     "test",
			cfg:      domain.BuildConfig{Test: true},
			expected: []domain.PhaseKind{domain.PhaseConfigure, domain.PhaseBuild, domain.PhaseTest},
		},
		{
			name:     "examples",
			cfg:      domain.BuildConfig{Examples: true},
			expected: []domain.PhaseKind{domain.PhaseConfigure, domain.PhaseBuild},
		},
		{
			name:     "examples and test",
			cfg:      domain.BuildConfig{Examples: true, Test: true},
			expected: []domain.PhaseKind{domain.PhaseConfigure, domain.PhaseBuild, domain.PhaseTest},
		},
		{
			name:     "clean only",
			cfg:      domain.BuildConfig{Clean: true},
			expected: []domain.PhaseKind{domain.PhaseClean},
		},
		{
			name: "clean and test",
			cfg:  domain.BuildConfig{Clean: true, Test: true},
			expected: []domain.PhaseKind{
				domain.PhaseClean, domain.PhaseConfigure, domain.PhaseBuild, domain.PhaseTest,
			},
		},
		{
			name:     "clean and examples",
			cfg:      domain.BuildConfig{Clean: true, Examples: true},
			expected: []domain.PhaseKind{domain.PhaseClean, domain.PhaseConfigure, domain.PhaseBuild},
		},
		{
			name: "everything",
			cfg:  domain.BuildConfig{Clean: true, Examples: true, Test: true},
			expected: []domain.PhaseKind{
				domain.PhaseClean, domain.PhaseConfigure, domain.PhaseBuild, domain.PhaseTest,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Plan(tt.cfg))
		})
	}
}

func TestPlan_CleanNeverRunsWithoutFlag(t *testing.T) {
	for _, test := range []bool{false, true} {
		for _, examples := range []bool{false, true} {
			plan := domain.Plan(domain.BuildConfig{Test: test, Examples: examples})
			assert.NotContains(t, plan, domain.PhaseClean)
			assert.Equal(t, domain.PhaseConfigure, plan[0])
		}
	}
}
