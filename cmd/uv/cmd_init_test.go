package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zackelia/uv/internal/testutil"
	"github.com/zackelia/uv/internal/workspace"
)

func TestInitCmd_virtual(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "init", "aviary", "--directory", dir, "--virtual", "--member", "bird-feeder", "--member", "seeds", "--no-git")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}

	wsDir := filepath.Join(dir, "aviary")
	ws, err := workspace.Discover(wsDir)
	if err != nil {
		t.Fatalf("generated workspace does not discover: %v", err)
	}
	if !ws.Manifest.IsVirtual() {
		t.Error("root should be virtual")
	}
	if len(ws.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(ws.Members))
	}

	// Source layout exists.
	if _, err := os.Stat(filepath.Join(wsDir, "packages", "bird-feeder", "src", "bird_feeder", "__init__.py")); err != nil {
		t.Errorf("member src layout missing: %v", err)
	}
	// Docs scaffold exists and passes its own check.
	if _, err := execute(t, "docs", "check", "--directory", wsDir); err != nil {
		t.Errorf("docs check on scaffold failed: %v", err)
	}
}

func TestInitCmd_rootPackage(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "init", "albatross", "--directory", dir, "--member", "seeds", "--no-git"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	ws, err := workspace.Discover(filepath.Join(dir, "albatross"))
	if err != nil {
		t.Fatalf("generated workspace does not discover: %v", err)
	}
	if ws.Manifest.IsVirtual() {
		t.Error("root should be a package")
	}
	if _, err := ws.MemberByName("albatross"); err != nil {
		t.Errorf("root package missing from members: %v", err)
	}
}

func TestInitCmd_git(t *testing.T) {
	testutil.RequireGit(t)
	dir := t.TempDir()

	if _, err := execute(t, "init", "aviary", "--directory", dir, "--virtual", "--member", "seeds"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	wsDir := filepath.Join(dir, "aviary")
	if _, err := os.Stat(filepath.Join(wsDir, ".git")); err != nil {
		t.Error("git repository not initialized")
	}
	data, err := os.ReadFile(filepath.Join(wsDir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if !strings.Contains(string(data), ".venv/") {
		t.Errorf(".gitignore = %q", data)
	}
}

func TestInitCmd_rejectsInvalidNames(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"absolute", []string{"init", "/abs", "--directory", dir, "--member", "a", "--no-git"}},
		{"escaping", []string{"init", "../up", "--directory", dir, "--member", "a", "--no-git"}},
		{"uppercase", []string{"init", "Aviary", "--directory", dir, "--member", "a", "--no-git"}},
		{"bad member", []string{"init", "aviary", "--directory", dir, "--member", "Bad_Name", "--no-git"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestInitCmd_existingWorkspace(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "init", "aviary", "--directory", dir, "--member", "a", "--no-git"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "init", "aviary", "--directory", dir, "--member", "a", "--no-git"); err == nil {
		t.Error("init over an existing workspace should fail without --force")
	}
	if _, err := execute(t, "init", "aviary", "--directory", dir, "--member", "a", "--no-git", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}
