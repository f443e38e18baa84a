package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// WriteMember creates a member package directory under root with a minimal
// pyproject.toml and a src layout.
func WriteMember(t *testing.T, root, relDir, name, requiresPython string, deps ...string) {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(relDir))
	content := "[project]\nname = \"" + name + "\"\nversion = \"0.1.0\"\n"
	if requiresPython != "" {
		content += "requires-python = \"" + requiresPython + "\"\n"
	}
	if len(deps) > 0 {
		content += "dependencies = ["
		for i, d := range deps {
			if i > 0 {
				content += ", "
			}
			content += "\"" + d + "\""
		}
		content += "]\n"
	}
	WriteFile(t, filepath.Join(dir, "pyproject.toml"), content)
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
}

// WriteVirtualRoot writes a workspace root manifest with no [project] table.
func WriteVirtualRoot(t *testing.T, root string, members, exclude []string) {
	t.Helper()
	content := "[tool.uv.workspace]\nmembers = [" + quoteList(members) + "]\n"
	if len(exclude) > 0 {
		content += "exclude = [" + quoteList(exclude) + "]\n"
	}
	WriteFile(t, filepath.Join(root, "pyproject.toml"), content)
}

// WriteRootPackage writes a workspace root manifest that is itself a package.
func WriteRootPackage(t *testing.T, root, name string, members, exclude []string) {
	t.Helper()
	content := "[project]\nname = \"" + name + "\"\nversion = \"0.1.0\"\n\n" +
		"[tool.uv.workspace]\nmembers = [" + quoteList(members) + "]\n"
	if len(exclude) > 0 {
		content += "exclude = [" + quoteList(exclude) + "]\n"
	}
	WriteFile(t, filepath.Join(root, "pyproject.toml"), content)
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
}

func quoteList(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += "\"" + s + "\""
	}
	return out
}

// InitGitRepo initializes a git repository with commit identity configured
// so tests can commit without global git config.
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()
	run(t, dir, "git", "init", "-b", "main")
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test")
}

// RequireGit skips the test when git is not installed.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
