package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
)

// Filename is the manifest file recognized as a package root.
const Filename = "pyproject.toml"

// Load reads and validates a pyproject.toml file.
func Load(path string) (*Pyproject, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a workspace manifest path
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates pyproject.toml content.
func Parse(data []byte) (*Pyproject, error) {
	var p Pyproject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest TOML: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks a manifest for errors.
func Validate(p *Pyproject) error { return validate(p) }

func validate(p *Pyproject) error {
	if p.Project == nil && p.Tool.UV.Workspace == nil {
		return fmt.Errorf("manifest: neither [project] nor [tool.uv.workspace] present")
	}
	if p.Project != nil && p.Project.Name == "" {
		return fmt.Errorf("manifest: project.name is required")
	}

	if ws := p.Tool.UV.Workspace; ws != nil {
		if len(ws.Members) == 0 {
			return fmt.Errorf("manifest: tool.uv.workspace.members is required")
		}
		for i, pat := range ws.Members {
			if err := validatePattern(pat, fmt.Sprintf("tool.uv.workspace.members[%d]", i)); err != nil {
				return err
			}
		}
		for i, pat := range ws.Exclude {
			if err := validatePattern(pat, fmt.Sprintf("tool.uv.workspace.exclude[%d]", i)); err != nil {
				return err
			}
		}
	}

	for name, src := range p.Tool.UV.Sources {
		if err := validateSource(name, src); err != nil {
			return err
		}
	}

	return nil
}

func validateSource(name string, src Source) error {
	if src.Workspace && src.Path != "" {
		return fmt.Errorf("manifest: tool.uv.sources.%s: workspace and path are mutually exclusive", name)
	}
	if !src.Workspace && src.Path == "" {
		return fmt.Errorf("manifest: tool.uv.sources.%s: one of workspace or path is required", name)
	}
	if src.Path != "" {
		if err := validatePattern(src.Path, fmt.Sprintf("tool.uv.sources.%s.path", name)); err != nil {
			return err
		}
	}
	return nil
}

// validatePattern ensures a glob pattern or path is relative, well formed,
// and does not escape the workspace root.
func validatePattern(pat, label string) error {
	if pat == "" {
		return fmt.Errorf("manifest: %s must not be empty", label)
	}
	if filepath.IsAbs(pat) {
		return fmt.Errorf("manifest: %s: absolute path is not allowed: %s", label, pat)
	}
	cleaned := filepath.Clean(pat)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("manifest: %s: pattern must not escape workspace (contains ..): %s", label, pat)
	}
	if _, err := filepath.Match(pat, ""); err != nil {
		return fmt.Errorf("manifest: %s: malformed glob pattern %q: %w", label, pat, err)
	}
	return nil
}

// WorkspaceSources returns the dependency names overridden to come from the
// workspace, sorted order not guaranteed.
func (p *Pyproject) WorkspaceSources() []string {
	var names []string
	for name, src := range p.Tool.UV.Sources {
		if src.Workspace {
			names = append(names, name)
		}
	}
	return names
}
