package domain

// SideSpec describes how one lockfile side is loaded and restricted before
// comparison: where the lockfile lives, which subtree to measure, and which
// package names to cut out of the graph first.
type SideSpec struct {
	// Source is a local path, file:// URL or http(s):// URL of the lockfile.
	Source string

	// Root selects the traversal starting point. Zero value selects the
	// whole graph. RootByHash and RootByName are mutually exclusive; the CLI
	// enforces that before a spec is built.
	Root RootSelector

	// Exclude lists package names removed from the graph before root
	// selection and traversal.
	Exclude []string
}

// SideDefaults are the per-side defaults read from an optional config file.
// Empty fields leave the corresponding flag value untouched.
type SideDefaults struct {
	RootName string
	RootHash string
	Exclude  []string
}

// ConfigDefaults are repo-pinned defaults for a comparison run, merged under
// the CLI flags (flags always win).
type ConfigDefaults struct {
	A      SideDefaults
	B      SideDefaults
	Strict bool
}
