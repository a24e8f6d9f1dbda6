package cargolock

// lockfileDTO mirrors the on-disk Cargo.lock TOML structure.
type lockfileDTO struct {
	Version  int          `toml:"version"`
	Packages []packageDTO `toml:"package"`
}

// packageDTO is one [[package]] entry.
type packageDTO struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}
