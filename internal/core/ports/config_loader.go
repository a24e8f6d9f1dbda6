package ports

import "go.trai.ch/lockdiff/internal/core/domain"

// ConfigLoader reads the optional defaults file for a comparison run.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads defaults from the given working directory. A missing file is
	// not an error; it returns (nil, nil).
	Load(cwd string) (*domain.ConfigDefaults, error)
}
