// Package cargolock parses Cargo.lock content into the domain package set.
package cargolock

import (
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/lockdiff/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.LockfileParser for the Cargo.lock TOML format.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse decodes Cargo.lock content and validates the set invariants:
// non-empty package names and checksum uniqueness.
//
// For git-sourced packages Cargo records no checksum; the pinned commit lives
// in the source URL fragment instead. That commit is surfaced as the record's
// checksum so root selection by hash works for both crates and git pins.
func (p *Parser) Parse(data []byte) (domain.PackageSet, error) {
	var dto lockfileDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	set := make(domain.PackageSet, 0, len(dto.Packages))
	seenChecksums := make(map[string]string, len(dto.Packages))

	for _, pkg := range dto.Packages {
		if pkg.Name == "" {
			return nil, zerr.With(domain.ErrEmptyPackageName, "version", pkg.Version)
		}

		checksum := pkg.Checksum
		if checksum == "" {
			checksum = sourcePin(pkg.Source)
		}
		if checksum != "" {
			if other, dup := seenChecksums[checksum]; dup {
				err := zerr.With(domain.ErrDuplicateChecksum, "checksum", checksum)
				err = zerr.With(err, "first", other)
				return nil, zerr.With(err, "second", pkg.Name+"@"+pkg.Version)
			}
			seenChecksums[checksum] = pkg.Name + "@" + pkg.Version
		}

		record := domain.PackageRecord{
			Name:     domain.NewInternedString(pkg.Name),
			Version:  domain.NewInternedString(pkg.Version),
			Checksum: checksum,
		}
		for _, dep := range pkg.Dependencies {
			record.Dependencies = append(record.Dependencies, parseDependencyRef(dep))
		}
		set = append(set, record)
	}

	return set, nil
}

// parseDependencyRef decodes one dependency string. Cargo writes either
// "name", "name version" or "name version (source)".
func parseDependencyRef(s string) domain.DependencyRef {
	fields := strings.Fields(s)
	ref := domain.DependencyRef{}
	if len(fields) > 0 {
		ref.Name = domain.NewInternedString(fields[0])
	}
	if len(fields) > 1 {
		ref.Version = domain.NewInternedString(fields[1])
	}
	if len(fields) > 2 {
		source := strings.Trim(fields[2], "()")
		if pin := sourcePin(source); pin != "" {
			ref.Checksum = pin
		}
	}
	return ref
}

// sourcePin extracts the pinned revision from a source URL fragment, e.g.
// "git+https://example.com/repo#<commit>".
func sourcePin(source string) string {
	if idx := strings.LastIndex(source, "#"); idx >= 0 {
		return source[idx+1:]
	}
	return ""
}
