package lock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zackelia/uv/internal/manifest"
	"github.com/zackelia/uv/internal/workspace"
)

// Build snapshots the discovered workspace into a lockfile. Members are
// recorded in discovery order, which is sorted by name.
func Build(ws *workspace.Workspace, toolVersion string) (*File, error) {
	requires, err := ws.RequiresPython()
	if err != nil {
		return nil, err
	}

	lf := &File{
		Version:        1,
		RequiresPython: requires,
		Metadata: Metadata{
			Workspace:   ws.Manifest.PackageName(),
			GeneratedAt: time.Now().Format(time.RFC3339),
			ToolVersion: toolVersion,
		},
	}

	for _, m := range ws.Members {
		digest, err := Digest(filepath.Join(m.Dir, manifest.Filename))
		if err != nil {
			return nil, fmt.Errorf("digesting manifest for %s: %w", m.Name, err)
		}
		lf.Members = append(lf.Members, Member{
			Name:           m.Name,
			Version:        m.Manifest.Project.Version,
			Directory:      m.RelDir,
			RequiresPython: m.Manifest.Project.RequiresPython,
			Dependencies:   m.Manifest.Project.Dependencies,
			Sources:        m.Manifest.Tool.UV.Sources,
			ManifestDigest: digest,
		})
	}

	return lf, nil
}

// Digest returns the sha256 digest of a manifest file, prefixed with the
// algorithm name.
func Digest(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a member manifest path
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}
