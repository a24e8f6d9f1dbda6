package ports

import "go.trai.ch/lockdiff/internal/core/domain"

// LockfileParser decodes raw lockfile content into the domain package set.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type LockfileParser interface {
	// Parse decodes data and validates the set invariants: non-empty names
	// and checksum uniqueness.
	Parse(data []byte) (domain.PackageSet, error)
}
