package docs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Report collects the outcome of a docs consistency check. Problems fail
// the check; Warnings do not.
type Report struct {
	Problems []string
	Warnings []string
}

// OK reports whether the check passed.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

// Err returns an error summarizing the problems, or nil when the check
// passed.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("docs check failed: %d problem(s)", len(r.Problems))
}

func (r *Report) problemf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// recognizedExtensions are the markdown extension names the documentation
// toolchain supports: the python-markdown built-ins plus the pymdownx set.
var recognizedExtensions = map[string]bool{
	"abbr":        true,
	"admonition":  true,
	"attr_list":   true,
	"codehilite":  true,
	"def_list":    true,
	"fenced_code": true,
	"footnotes":   true,
	"md_in_html":  true,
	"meta":        true,
	"sane_lists":  true,
	"smarty":      true,
	"tables":      true,
	"toc":         true,

	"pymdownx.betterem":     true,
	"pymdownx.caret":        true,
	"pymdownx.details":      true,
	"pymdownx.emoji":        true,
	"pymdownx.highlight":    true,
	"pymdownx.inlinehilite": true,
	"pymdownx.keys":         true,
	"pymdownx.magiclink":    true,
	"pymdownx.mark":         true,
	"pymdownx.smartsymbols": true,
	"pymdownx.snippets":     true,
	"pymdownx.superfences":  true,
	"pymdownx.tabbed":       true,
	"pymdownx.tasklist":     true,
	"pymdownx.tilde":        true,
}

// markdownInstance is initialized once and reused; the parser configuration
// never changes and goldmark parsers are safe to share.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func parser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
				extension.Footnote,
			),
		)
	})
	return markdownInstance
}

// Check validates the configuration against the docs tree rooted at
// baseDir/<docs_dir>: every nav target must exist and parse as markdown,
// every enabled extension must be recognized, and documents on disk that no
// nav entry references are reported as orphans.
func Check(cfg *Config, baseDir string) *Report {
	r := &Report{}
	docsDir := filepath.Join(baseDir, filepath.FromSlash(cfg.DocsDir))

	if len(cfg.Nav) == 0 {
		r.problemf("nav: no entries defined")
	}

	referenced := make(map[string]bool)
	for _, page := range cfg.Pages() {
		referenced[page] = true
		checkPage(r, docsDir, page)
	}

	for _, ext := range cfg.MarkdownExtensions {
		if !recognizedExtensions[ext.Name] {
			r.problemf("markdown_extensions: unrecognized extension %q", ext.Name)
		}
	}

	for _, orphan := range findOrphans(docsDir, referenced) {
		r.warnf("docs: %s exists but is not referenced by nav", orphan)
	}

	return r
}

func checkPage(r *Report, docsDir, page string) {
	path := filepath.Join(docsDir, filepath.FromSlash(page))
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the docs config nav
	if err != nil {
		r.problemf("nav: %s does not exist under %s", page, docsDir)
		return
	}

	doc := parser().Parser().Parse(text.NewReader(data))
	if !hasTopHeading(doc) {
		r.warnf("docs: %s has no top-level heading", page)
	}
}

// hasTopHeading reports whether the document opens with a level-1 heading.
func hasTopHeading(doc ast.Node) bool {
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		if h, ok := child.(*ast.Heading); ok {
			return h.Level == 1
		}
		// Skip leading HTML blocks (comments, includes) before the title.
		if _, ok := child.(*ast.HTMLBlock); ok {
			continue
		}
		return false
	}
	return false
}

// findOrphans returns markdown files under docsDir that no nav entry
// references, as slash-separated paths relative to docsDir.
func findOrphans(docsDir string, referenced map[string]bool) []string {
	var orphans []string
	_ = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // a missing docs dir is reported via nav checks
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(docsDir, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !referenced[rel] {
			orphans = append(orphans, rel)
		}
		return nil
	})
	sort.Strings(orphans)
	return orphans
}
