package lock

import "github.com/zackelia/uv/internal/manifest"

// File represents uv.lock.
type File struct {
	Version        int      `toml:"version"`
	RequiresPython string   `toml:"requires-python,omitempty"`
	Metadata       Metadata `toml:"metadata"`
	Members        []Member `toml:"member"`
}

// Metadata records how and when the lockfile was generated.
type Metadata struct {
	Workspace   string `toml:"workspace,omitempty"`
	GeneratedAt string `toml:"generated-at"`
	ToolVersion string `toml:"tool-version"`
}

// Member records the pinned state of a single workspace member.
type Member struct {
	Name           string                     `toml:"name"`
	Version        string                     `toml:"version,omitempty"`
	Directory      string                     `toml:"directory"`
	RequiresPython string                     `toml:"requires-python,omitempty"`
	Dependencies   []string                   `toml:"dependencies,omitempty"`
	Sources        map[string]manifest.Source `toml:"sources,omitempty"`
	ManifestDigest string                     `toml:"manifest-digest"`
}

// MemberByName returns the locked member entry with the given name.
func (f *File) MemberByName(name string) (Member, bool) {
	for _, m := range f.Members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}
