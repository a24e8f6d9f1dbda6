package domain

import (
	"slices"
)

// Verdict classifies one package name across the two compared subgraphs.
type Verdict int

const (
	// VerdictSame means the name is present on both sides with equal versions.
	VerdictSame Verdict = iota

	// VerdictDifferent means the name is present on both sides but the
	// versions disagree. This is the only verdict that fails a comparison.
	VerdictDifferent

	// VerdictOnlyA means the name is only present in side A. Reported for
	// visibility; does not fail the comparison by itself.
	VerdictOnlyA

	// VerdictOnlyB means the name is only present in side B.
	VerdictOnlyB
)

// String returns the verdict label used in reports.
func (v Verdict) String() string {
	switch v {
	case VerdictSame:
		return "same"
	case VerdictDifferent:
		return "different"
	case VerdictOnlyA:
		return "only-a"
	case VerdictOnlyB:
		return "only-b"
	default:
		return "unknown"
	}
}

// Entry is one row of a comparison: a single package name with the versions
// found on each side and the resulting verdict. PathA and PathB hold one
// dependency chain from a root to the package for diagnosing mismatches.
type Entry struct {
	Name      string
	VersionsA []string
	VersionsB []string
	Verdict   Verdict
	PathA     string
	PathB     string
}

// CompareOptions tunes comparison strictness.
type CompareOptions struct {
	// Strict requires exactly one version per side for a name to count as
	// same. The default treats equal version sets as same even when a name
	// exists at multiple versions on both sides.
	Strict bool
}

// Report is the ordered outcome of comparing two subgraphs.
type Report struct {
	// Entries is sorted by package name for deterministic, diffable output.
	Entries []Entry

	// CountA and CountB are the distinct package names per side; Common is the
	// size of the name intersection.
	CountA int
	CountB int
	Common int

	// DigestA and DigestB fingerprint each side's subgraph.
	DigestA uint64
	DigestB uint64
}

// Matches reports whether every common package resolved to equal versions.
// Packages present on only one side do not fail the comparison.
func (r Report) Matches() bool {
	for _, e := range r.Entries {
		if e.Verdict == VerdictDifferent {
			return false
		}
	}
	return true
}

// Compare computes the per-name verdicts across two reachable subgraphs.
// Output is sorted by package name regardless of input ordering.
func Compare(a, b Subgraph, opts CompareOptions) Report {
	groupedA := a.versionsByName()
	groupedB := b.versionsByName()

	names := make([]string, 0, len(groupedA)+len(groupedB))
	for name := range groupedA {
		names = append(names, name)
	}
	for name := range groupedB {
		if _, ok := groupedA[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	report := Report{
		Entries: make([]Entry, 0, len(names)),
		CountA:  len(groupedA),
		CountB:  len(groupedB),
		DigestA: a.Fingerprint(),
		DigestB: b.Fingerprint(),
	}

	for _, name := range names {
		versionsA, inA := groupedA[name]
		versionsB, inB := groupedB[name]

		entry := Entry{Name: name}
		switch {
		case inA && inB:
			report.Common++
			entry.VersionsA = sortedVersions(versionsA)
			entry.VersionsB = sortedVersions(versionsB)
			entry.PathA = formatPath(a.Path(versionsA[entry.VersionsA[0]]))
			entry.PathB = formatPath(b.Path(versionsB[entry.VersionsB[0]]))
			entry.Verdict = versionVerdict(entry.VersionsA, entry.VersionsB, opts)
		case inA:
			entry.VersionsA = sortedVersions(versionsA)
			entry.PathA = formatPath(a.Path(versionsA[entry.VersionsA[0]]))
			entry.Verdict = VerdictOnlyA
		default:
			entry.VersionsB = sortedVersions(versionsB)
			entry.PathB = formatPath(b.Path(versionsB[entry.VersionsB[0]]))
			entry.Verdict = VerdictOnlyB
		}
		report.Entries = append(report.Entries, entry)
	}

	return report
}

// versionVerdict decides same vs. different for a name present on both sides.
func versionVerdict(versionsA, versionsB []string, opts CompareOptions) Verdict {
	if opts.Strict && (len(versionsA) != 1 || len(versionsB) != 1) {
		return VerdictDifferent
	}
	if slices.Equal(versionsA, versionsB) {
		return VerdictSame
	}
	return VerdictDifferent
}

func sortedVersions(byVersion map[string]NodeID) []string {
	versions := make([]string, 0, len(byVersion))
	for v := range byVersion {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}
