package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zackelia/uv/internal/manifest"
	"github.com/zackelia/uv/internal/workspace"
)

// ErrMissing is returned when no lockfile exists at the workspace root.
var ErrMissing = errors.New("unable to find lockfile at `uv.lock`; to create a lockfile, run `uv lock`")

// ErrStale is returned when the lockfile no longer matches the workspace.
var ErrStale = errors.New("the lockfile at `uv.lock` needs to be updated; to update it, run `uv lock`")

// Verify loads the lockfile at the workspace root and checks it against the
// discovered member set: every member must be locked with a matching
// manifest digest, and the lockfile must not pin members that no longer
// exist. The returned error wraps ErrMissing or ErrStale.
func Verify(ws *workspace.Workspace) (*File, error) {
	if _, err := os.Stat(ws.LockPath); err != nil {
		return nil, ErrMissing
	}
	lf, err := Load(ws.LockPath)
	if err != nil {
		return nil, err
	}
	if err := verifyAgainst(lf, ws); err != nil {
		return lf, err
	}
	return lf, nil
}

func verifyAgainst(lf *File, ws *workspace.Workspace) error {
	names := make(map[string]bool, len(ws.Members))
	for _, m := range ws.Members {
		names[m.Name] = true

		locked, ok := lf.MemberByName(m.Name)
		if !ok {
			return fmt.Errorf("%w: member %q is not locked", ErrStale, m.Name)
		}
		if locked.Directory != m.RelDir {
			return fmt.Errorf("%w: member %q moved from %s to %s", ErrStale, m.Name, locked.Directory, m.RelDir)
		}
		digest, err := Digest(filepath.Join(m.Dir, manifest.Filename))
		if err != nil {
			return fmt.Errorf("digesting manifest for %s: %w", m.Name, err)
		}
		if digest != locked.ManifestDigest {
			return fmt.Errorf("%w: manifest for %q changed", ErrStale, m.Name)
		}
	}

	for _, locked := range lf.Members {
		if !names[locked.Name] {
			return fmt.Errorf("%w: locked member %q is no longer in the workspace", ErrStale, locked.Name)
		}
	}
	return nil
}
