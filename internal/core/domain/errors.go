package domain

import "errors"

var (
	// ErrUnresolvedDependency is returned when a dependency reference has no
	// matching package in the same set.
	ErrUnresolvedDependency = errors.New("unresolved dependency")

	// ErrAmbiguousDependency is returned when a dependency reference matches more
	// than one package and carries no checksum to disambiguate.
	ErrAmbiguousDependency = errors.New("ambiguous dependency")

	// ErrHashNotFound is returned when a root selector names a checksum that is
	// not present in the graph.
	ErrHashNotFound = errors.New("no package with requested hash")

	// ErrNameNotFound is returned when a root selector names a package that is
	// not present in the graph.
	ErrNameNotFound = errors.New("no package with requested name")

	// ErrAmbiguousName is returned when a root selector names a package that
	// exists at multiple versions; the intended subtree cannot be guessed.
	ErrAmbiguousName = errors.New("package name matches multiple versions")

	// ErrVersionsDiffer is returned by the application when at least one common
	// package resolves to different versions on the two sides. It marks a normal
	// comparison outcome, not a processing failure.
	ErrVersionsDiffer = errors.New("some packages have different versions")

	// ErrEmptyPackageName is returned when a lockfile contains a package record
	// without a name.
	ErrEmptyPackageName = errors.New("package record has empty name")

	// ErrDuplicateChecksum is returned when two package records in one lockfile
	// share the same checksum.
	ErrDuplicateChecksum = errors.New("duplicate checksum in lockfile")

	// ErrLockfileParseFailed is returned when lockfile content cannot be decoded.
	ErrLockfileParseFailed = errors.New("failed to parse lockfile")

	// ErrLockfileReadFailed is returned when lockfile content cannot be read
	// from a local path.
	ErrLockfileReadFailed = errors.New("failed to read lockfile")

	// ErrLockfileFetchFailed is returned when lockfile content cannot be fetched
	// from a remote URL.
	ErrLockfileFetchFailed = errors.New("failed to fetch lockfile")

	// ErrUnsupportedScheme is returned when a lockfile source URL uses a scheme
	// other than file, http or https.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")

	// ErrConfigReadFailed is returned when the defaults file cannot be read.
	ErrConfigReadFailed = errors.New("failed to read config file")

	// ErrConfigParseFailed is returned when the defaults file cannot be parsed.
	ErrConfigParseFailed = errors.New("failed to parse config file")
)
