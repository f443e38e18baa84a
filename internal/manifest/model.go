package manifest

// Pyproject represents a pyproject.toml file, restricted to the tables
// this tool reads: the [project] metadata and the [tool.uv] settings.
type Pyproject struct {
	Project *Project `toml:"project"`
	Tool    Tool     `toml:"tool"`
}

// Project is the [project] table. A manifest without one is a virtual
// workspace root: it declares membership only and is not a package itself.
type Project struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version,omitempty"`
	Description    string   `toml:"description,omitempty"`
	RequiresPython string   `toml:"requires-python,omitempty"`
	Dependencies   []string `toml:"dependencies,omitempty"`
}

// Tool is the [tool] table; only [tool.uv] is recognized.
type Tool struct {
	UV UV `toml:"uv"`
}

// UV is the [tool.uv] table.
type UV struct {
	Workspace *Workspace        `toml:"workspace"`
	Sources   map[string]Source `toml:"sources,omitempty"`
}

// Workspace is the [tool.uv.workspace] table. Members lists directory glob
// patterns identifying member packages; Exclude lists glob patterns for
// directories removed from membership after member expansion.
type Workspace struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude,omitempty"`
}

// Source overrides where a dependency is taken from. Exactly one of
// Workspace or Path must be set.
type Source struct {
	Workspace bool   `toml:"workspace,omitempty"`
	Path      string `toml:"path,omitempty"`
	Editable  *bool  `toml:"editable,omitempty"`
}

// IsVirtual reports whether this manifest is a virtual workspace root
// (workspace membership declared, no package of its own).
func (p *Pyproject) IsVirtual() bool {
	return p.Project == nil && p.Tool.UV.Workspace != nil
}

// HasWorkspace reports whether this manifest declares a workspace.
func (p *Pyproject) HasWorkspace() bool {
	return p.Tool.UV.Workspace != nil
}

// PackageName returns the [project] name, or empty for a virtual root.
func (p *Pyproject) PackageName() string {
	if p.Project == nil {
		return ""
	}
	return p.Project.Name
}

// IsEditable reports whether a path source is editable (default true,
// matching the behavior of path dependencies inside a workspace).
func (s Source) IsEditable() bool {
	if s.Editable != nil {
		return *s.Editable
	}
	return true
}
