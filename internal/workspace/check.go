package workspace

import (
	"fmt"
	"strings"
)

// CheckMember validates one member against workspace invariants and returns
// the problems found:
//   - the member must have a recognizable source directory;
//   - every workspace source override must name a dependency that is itself
//     a workspace member;
//   - every workspace source override must correspond to a declared
//     dependency.
func (w *Workspace) CheckMember(m Member) []string {
	var problems []string

	if m.SourceDir() == "" {
		problems = append(problems, fmt.Sprintf("%s: no source directory (expected src/ or %s/)",
			m.Name, strings.ReplaceAll(m.Name, "-", "_")))
	}

	declared := make(map[string]bool, len(m.Manifest.Project.Dependencies))
	for _, dep := range m.Manifest.Project.Dependencies {
		declared[depName(dep)] = true
	}

	for name, src := range m.Manifest.Tool.UV.Sources {
		if src.Workspace {
			if _, err := w.MemberByName(name); err != nil {
				problems = append(problems, fmt.Sprintf("%s: source override %q marked workspace but no member has that name", m.Name, name))
			}
		}
		if !declared[name] {
			problems = append(problems, fmt.Sprintf("%s: source override %q has no matching dependency", m.Name, name))
		}
	}

	return problems
}

// depName extracts the package name from a dependency specifier such as
// "tqdm>=4,<5" or "bird-feeder".
func depName(spec string) string {
	spec = strings.TrimSpace(spec)
	for i, r := range spec {
		switch r {
		case '>', '<', '=', '!', '~', '[', ' ', ';':
			return spec[:i]
		}
	}
	return spec
}
