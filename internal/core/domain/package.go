package domain

// DependencyRef is one declared dependency reference inside a package record.
// It resolves to another record in the same set by name, narrowed by version
// when the lockfile spells one out, or matched exactly by checksum when present.
type DependencyRef struct {
	// Name is the referenced package name.
	Name InternedString

	// Version is the referenced version. Optional; empty when the lockfile
	// records the dependency by bare name.
	Version InternedString

	// Checksum is the referenced content hash. Optional; when set, resolution
	// matches by checksum only.
	Checksum string
}

// PackageRecord is one pinned package as parsed from a lockfile.
type PackageRecord struct {
	// Name is the package name. Never empty in a valid set.
	Name InternedString

	// Version is the pinned version, treated as an opaque comparable token.
	// No semver arithmetic is ever performed on it.
	Version InternedString

	// Checksum is the content hash (crate checksum or git commit). Optional,
	// but unique within one set when present.
	Checksum string

	// Dependencies are the declared references to other records in the set.
	Dependencies []DependencyRef
}

// NodeID is the stable identity of a package record within one graph:
// the checksum when present, otherwise the name@version pair. Traversal
// visited-sets are keyed by NodeID, never by structural equality.
type NodeID struct {
	key InternedString
}

// NodeID returns the stable identity for the record.
func (r PackageRecord) NodeID() NodeID {
	if r.Checksum != "" {
		return NodeID{key: NewInternedString(r.Checksum)}
	}
	return NodeID{key: NewInternedString(r.Name.String() + "@" + r.Version.String())}
}

// Label returns the record formatted as name@version.
func (r PackageRecord) Label() string {
	return r.Name.String() + "@" + r.Version.String()
}

// String returns the identity key. Used in error metadata and logs.
func (id NodeID) String() string {
	return id.key.String()
}

// PackageSet is the full collection of package records loaded from one lockfile.
type PackageSet []PackageRecord
