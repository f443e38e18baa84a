package docs

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/zackelia/uv/internal/testutil"
)

func writeDocsTree(t *testing.T, dir string) {
	t.Helper()
	testutil.WriteFile(t, filepath.Join(dir, "docs", "index.md"), "# Home\n\nWelcome.\n")
	testutil.WriteFile(t, filepath.Join(dir, "docs", "guide.md"), "# Guide\n\nSteps.\n")
}

func TestCheck_passes(t *testing.T) {
	dir := t.TempDir()
	writeDocsTree(t, dir)

	cfg, err := Parse([]byte("site_name: x\nnav:\n  - index.md\n  - Guide: guide.md\nmarkdown_extensions:\n  - admonition\n"))
	if err != nil {
		t.Fatal(err)
	}

	r := Check(cfg, dir)
	if !r.OK() {
		t.Fatalf("Check() problems: %v", r.Problems)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
	if len(r.Warnings) != 0 {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestCheck_missingNavTarget(t *testing.T) {
	dir := t.TempDir()
	writeDocsTree(t, dir)

	cfg, err := Parse([]byte("site_name: x\nnav:\n  - index.md\n  - missing.md\n"))
	if err != nil {
		t.Fatal(err)
	}

	r := Check(cfg, dir)
	if r.OK() {
		t.Fatal("Check() should fail for a missing nav target")
	}
	if !containsSubstring(r.Problems, "missing.md does not exist") {
		t.Errorf("problems = %v", r.Problems)
	}
}

func TestCheck_unrecognizedExtension(t *testing.T) {
	dir := t.TempDir()
	writeDocsTree(t, dir)

	cfg, err := Parse([]byte("site_name: x\nnav:\n  - index.md\n  - guide.md\nmarkdown_extensions:\n  - made_up_ext\n"))
	if err != nil {
		t.Fatal(err)
	}

	r := Check(cfg, dir)
	if r.OK() {
		t.Fatal("Check() should fail for an unrecognized extension")
	}
	if !containsSubstring(r.Problems, "made_up_ext") {
		t.Errorf("problems = %v", r.Problems)
	}
}

func TestCheck_orphanWarning(t *testing.T) {
	dir := t.TempDir()
	writeDocsTree(t, dir)
	testutil.WriteFile(t, filepath.Join(dir, "docs", "drafts", "notes.md"), "# Notes\n")

	cfg, err := Parse([]byte("site_name: x\nnav:\n  - index.md\n  - guide.md\n"))
	if err != nil {
		t.Fatal(err)
	}

	r := Check(cfg, dir)
	if !r.OK() {
		t.Fatalf("Check() problems: %v", r.Problems)
	}
	if !containsSubstring(r.Warnings, "drafts/notes.md") {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestCheck_missingTopHeadingWarns(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "docs", "index.md"), "no heading here\n")

	cfg, err := Parse([]byte("site_name: x\nnav:\n  - index.md\n"))
	if err != nil {
		t.Fatal(err)
	}

	r := Check(cfg, dir)
	if !r.OK() {
		t.Fatalf("Check() problems: %v", r.Problems)
	}
	if !containsSubstring(r.Warnings, "no top-level heading") {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestCheck_emptyNav(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{SiteName: "x", DocsDir: "docs"}

	r := Check(cfg, dir)
	if r.OK() {
		t.Fatal("Check() should fail with no nav entries")
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
