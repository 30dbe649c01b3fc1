package ports

import "go.trai.ch/forge/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the project governing cwd and returns its settings.
	// When path is set it names the project file explicitly.
	Load(cwd, path string) (domain.Project, error)
}
