package lock

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Load reads a uv.lock file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace lockfile path
	if err != nil {
		return nil, fmt.Errorf("reading lockfile: %w", err)
	}
	return Parse(data)
}

// Parse parses uv.lock content.
func Parse(data []byte) (*File, error) {
	var lf File
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing lockfile TOML: %w", err)
	}
	if lf.Version != 1 {
		return nil, fmt.Errorf("unsupported lockfile version: %d (expected 1)", lf.Version)
	}
	return &lf, nil
}

// Save writes the lockfile to disk.
func Save(path string, lf *File) error {
	data, err := toml.Marshal(*lf)
	if err != nil {
		return fmt.Errorf("marshaling lockfile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // lockfile needs to be readable
		return fmt.Errorf("writing lockfile: %w", err)
	}
	return nil
}
