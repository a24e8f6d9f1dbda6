// Package config provides the optional defaults file loader for lockdiff.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lockdiff/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the defaults file looked up in the working directory.
const DefaultFilename = ".lockdiff.yaml"

// Loader implements ports.ConfigLoader using a YAML file. The file is
// optional; repos that want pinned excludes or roots for CI check it in, all
// other runs proceed without one.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// fileDTO represents the structure of the .lockdiff.yaml file.
type fileDTO struct {
	A      sideDTO `yaml:"a"`
	B      sideDTO `yaml:"b"`
	Strict bool    `yaml:"strict"`
}

// sideDTO holds per-side defaults.
type sideDTO struct {
	RootName string   `yaml:"rootName"`
	RootHash string   `yaml:"rootHash"`
	Exclude  []string `yaml:"exclude"`
}

// Load reads defaults from the given working directory. A missing file
// returns (nil, nil).
func (l *Loader) Load(cwd string) (*domain.ConfigDefaults, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is rooted in cwd
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &domain.ConfigDefaults{
		A:      domain.SideDefaults{RootName: dto.A.RootName, RootHash: dto.A.RootHash, Exclude: dto.A.Exclude},
		B:      domain.SideDefaults{RootName: dto.B.RootName, RootHash: dto.B.RootHash, Exclude: dto.B.Exclude},
		Strict: dto.Strict,
	}, nil
}
