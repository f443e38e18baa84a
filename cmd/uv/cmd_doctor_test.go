package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zackelia/uv/internal/testutil"
)

func TestDoctorCmd_reportsWorkspace(t *testing.T) {
	dir := fixtureWorkspace(t)
	if err := os.MkdirAll(filepath.Join(dir, ".venv"), 0755); err != nil {
		t.Fatal(err)
	}

	// git or python may be missing on the host; the workspace lines must
	// appear either way.
	out, _ := execute(t, "doctor", "--directory", dir)

	if !strings.Contains(out, "(2 members)") {
		t.Errorf("missing workspace line:\n%s", out)
	}
	if !strings.Contains(out, "Shared environment: "+filepath.Join(dir, ".venv")) {
		t.Errorf("missing venv line:\n%s", out)
	}
	if !strings.Contains(out, "Git repository: absent") {
		t.Errorf("missing git repository line:\n%s", out)
	}
}

func TestDoctorCmd_gitRepoPresent(t *testing.T) {
	testutil.RequireGit(t)
	dir := fixtureWorkspace(t)
	testutil.InitGitRepo(t, dir)

	out, _ := execute(t, "doctor", "--directory", dir)
	if !strings.Contains(out, "Git repository: present") {
		t.Errorf("missing git repository line:\n%s", out)
	}
	if !strings.Contains(out, "Shared environment: not created") {
		t.Errorf("missing venv line:\n%s", out)
	}
}

func TestDoctorCmd_outsideWorkspace(t *testing.T) {
	dir := t.TempDir()

	out, _ := execute(t, "doctor", "--directory", dir)
	if !strings.Contains(out, "No workspace found") {
		t.Errorf("missing skip note:\n%s", out)
	}
}
