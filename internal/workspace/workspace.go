package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zackelia/uv/internal/manifest"
)

// Member is a discovered member package: a directory matched by a member
// pattern that contains its own manifest.
type Member struct {
	Name     string
	Dir      string // absolute path
	RelDir   string // path relative to the workspace root, slash-separated
	Manifest *manifest.Pyproject
}

// Workspace holds the resolved root, the root manifest, and the discovered
// members. All members share one lockfile scope at the root.
type Workspace struct {
	Root         string
	ManifestPath string
	LockPath     string
	Manifest     *manifest.Pyproject
	Members      []Member // sorted by name; includes the root package unless virtual
}

// LockFilename is the shared lockfile written at the workspace root.
const LockFilename = "uv.lock"

// Discover loads the manifest at root and expands its member patterns.
// Exclusion patterns are applied after member expansion, so a directory
// matching both lists is excluded. Every member pattern must match at least
// one directory containing a manifest.
func Discover(root string) (*Workspace, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	manifestPath := filepath.Join(root, manifest.Filename)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	if !m.HasWorkspace() {
		return nil, fmt.Errorf("%s does not declare a workspace ([tool.uv.workspace] missing)", manifestPath)
	}

	ws := &Workspace{
		Root:         root,
		ManifestPath: manifestPath,
		LockPath:     filepath.Join(root, LockFilename),
		Manifest:     m,
	}

	members, err := expandMembers(root, m.Tool.UV.Workspace)
	if err != nil {
		return nil, err
	}

	// The root package is itself a member unless the root is virtual.
	if !m.IsVirtual() {
		members = append(members, Member{
			Name:     m.PackageName(),
			Dir:      root,
			RelDir:   ".",
			Manifest: m,
		})
	}

	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

	seen := make(map[string]string, len(members))
	for _, mem := range members {
		if prev, ok := seen[mem.Name]; ok {
			return nil, fmt.Errorf("workspace: duplicate member name %q (%s and %s)", mem.Name, prev, mem.RelDir)
		}
		seen[mem.Name] = mem.RelDir
	}

	ws.Members = members
	return ws, nil
}

// expandMembers resolves member glob patterns against the filesystem and
// loads a manifest from every surviving directory.
func expandMembers(root string, w *manifest.Workspace) ([]Member, error) {
	excluded, err := expandExcludes(root, w.Exclude)
	if err != nil {
		return nil, err
	}

	var members []Member
	added := make(map[string]bool)
	for _, pat := range w.Members {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pat)))
		if err != nil {
			return nil, fmt.Errorf("workspace: member pattern %q: %w", pat, err)
		}

		found := false
		for _, dir := range matches {
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				continue
			}
			if excluded[dir] {
				continue
			}
			// Overlapping patterns may match the same directory; it is
			// still one member.
			if added[dir] {
				found = true
				continue
			}
			mpath := filepath.Join(dir, manifest.Filename)
			if _, err := os.Stat(mpath); err != nil {
				continue
			}
			m, err := manifest.Load(mpath)
			if err != nil {
				return nil, fmt.Errorf("workspace: member %s: %w", dir, err)
			}
			if m.Project == nil {
				return nil, fmt.Errorf("workspace: member %s has no [project] table", dir)
			}
			rel, err := filepath.Rel(root, dir)
			if err != nil {
				return nil, err
			}
			members = append(members, Member{
				Name:     m.PackageName(),
				Dir:      dir,
				RelDir:   filepath.ToSlash(rel),
				Manifest: m,
			})
			added[dir] = true
			found = true
		}

		if !found {
			return nil, fmt.Errorf("workspace: member pattern %q matched no package directory", pat)
		}
	}
	return members, nil
}

func expandExcludes(root string, patterns []string) (map[string]bool, error) {
	excluded := make(map[string]bool)
	for _, pat := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pat)))
		if err != nil {
			return nil, fmt.Errorf("workspace: exclude pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			excluded[m] = true
		}
	}
	return excluded, nil
}

// FindRoot walks up from dir to the nearest directory whose manifest
// declares a workspace. It returns an error when no such directory exists.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		mpath := filepath.Join(dir, manifest.Filename)
		if _, err := os.Stat(mpath); err == nil {
			m, err := manifest.Load(mpath)
			if err == nil && m.HasWorkspace() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no workspace found in %s or any parent directory", dir)
		}
		dir = parent
	}
}

// MemberByName returns the member with the given package name.
func (w *Workspace) MemberByName(name string) (Member, error) {
	for _, m := range w.Members {
		if m.Name == name {
			return m, nil
		}
	}
	return Member{}, fmt.Errorf("package %q is not a workspace member", name)
}

// VenvDir returns the shared environment directory at the workspace root.
func (w *Workspace) VenvDir() string {
	return filepath.Join(w.Root, ".venv")
}

// SourceDir returns the conventional source directory for a member, or
// empty when none exists. Both the src layout and a flat package directory
// named after the package are recognized.
func (m Member) SourceDir() string {
	src := filepath.Join(m.Dir, "src")
	if info, err := os.Stat(src); err == nil && info.IsDir() {
		return src
	}
	flat := filepath.Join(m.Dir, strings.ReplaceAll(m.Name, "-", "_"))
	if info, err := os.Stat(flat); err == nil && info.IsDir() {
		return flat
	}
	return ""
}
