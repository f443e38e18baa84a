package docs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the default site configuration file.
const Filename = "mkdocs.yml"

// Config represents the documentation-site configuration.
type Config struct {
	SiteName           string      `yaml:"site_name"`
	SiteURL            string      `yaml:"site_url,omitempty"`
	RepoURL            string      `yaml:"repo_url,omitempty"`
	DocsDir            string      `yaml:"docs_dir,omitempty"`
	Theme              Theme       `yaml:"theme,omitempty"`
	Nav                []NavItem   `yaml:"nav"`
	MarkdownExtensions []Extension `yaml:"markdown_extensions,omitempty"`
}

// Theme declares the site theme and its options.
type Theme struct {
	Name     string         `yaml:"name"`
	Features []string       `yaml:"features,omitempty"`
	Palette  map[string]any `yaml:"palette,omitempty"`
	Logo     string         `yaml:"logo,omitempty"`
}

// NavItem is one navigation tree entry. YAML allows three shapes: a bare
// document path, a single-key mapping of title to path, or a single-key
// mapping of title to a nested entry list.
type NavItem struct {
	Title    string
	Path     string
	Children []NavItem
}

// IsSection reports whether the entry groups nested entries rather than
// pointing at a document.
func (n NavItem) IsSection() bool { return len(n.Children) > 0 }

// UnmarshalYAML decodes the three navigation entry shapes.
func (n *NavItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&n.Path)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("nav entry must have exactly one key (line %d)", node.Line)
		}
		key, value := node.Content[0], node.Content[1]
		if err := key.Decode(&n.Title); err != nil {
			return err
		}
		switch value.Kind {
		case yaml.ScalarNode:
			return value.Decode(&n.Path)
		case yaml.SequenceNode:
			return value.Decode(&n.Children)
		default:
			return fmt.Errorf("nav entry %q must map to a path or a list (line %d)", n.Title, value.Line)
		}
	default:
		return fmt.Errorf("nav entry must be a path or a mapping (line %d)", node.Line)
	}
}

// MarshalYAML renders the entry back into its compact YAML shape.
func (n NavItem) MarshalYAML() (any, error) {
	if n.Title == "" {
		return n.Path, nil
	}
	if n.IsSection() {
		return map[string][]NavItem{n.Title: n.Children}, nil
	}
	return map[string]string{n.Title: n.Path}, nil
}

// Extension is one enabled markdown extension: a bare name or a single-key
// mapping of name to an option table.
type Extension struct {
	Name    string
	Options map[string]any
}

// UnmarshalYAML decodes both extension shapes.
func (e *Extension) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Name)
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("markdown extension entry must have exactly one key (line %d)", node.Line)
		}
		if err := node.Content[0].Decode(&e.Name); err != nil {
			return err
		}
		return node.Content[1].Decode(&e.Options)
	default:
		return fmt.Errorf("markdown extension entry must be a name or a mapping (line %d)", node.Line)
	}
}

// Load reads and parses a site configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the docs config path
	if err != nil {
		return nil, fmt.Errorf("reading docs config: %w", err)
	}
	return Parse(data)
}

// Parse parses site configuration content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing docs config YAML: %w", err)
	}
	if cfg.SiteName == "" {
		return nil, fmt.Errorf("docs config: site_name is required")
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = "docs"
	}
	return &cfg, nil
}

// Pages returns every document path referenced by the navigation tree, in
// navigation order.
func (c *Config) Pages() []string {
	var paths []string
	var walk func(items []NavItem)
	walk = func(items []NavItem) {
		for _, it := range items {
			if it.Path != "" {
				paths = append(paths, it.Path)
			}
			walk(it.Children)
		}
	}
	walk(c.Nav)
	return paths
}
