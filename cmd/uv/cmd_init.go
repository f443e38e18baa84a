package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zackelia/uv/internal/git"
	"github.com/zackelia/uv/internal/manifest"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new workspace interactively or from flags",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().Bool("virtual", false, "Create a virtual workspace root (no root package)")
	cmd.Flags().StringSlice("member", nil, "Member packages to create under packages/")
	cmd.Flags().Bool("force", false, "Overwrite an existing workspace")
	cmd.Flags().Bool("no-git", false, "Skip git repository initialization")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir, _ := cmd.Flags().GetString("directory")
	virtual, _ := cmd.Flags().GetBool("virtual")
	members, _ := cmd.Flags().GetStringSlice("member")
	force, _ := cmd.Flags().GetBool("force")
	noGit, _ := cmd.Flags().GetBool("no-git")

	if filepath.IsAbs(name) || strings.Contains(filepath.Clean(name), "..") {
		return fmt.Errorf("invalid workspace name %q: must be a simple directory name (no absolute paths or ..)", name)
	}
	if err := validatePackageName(name); err != nil {
		return err
	}
	for _, m := range members {
		if err := validatePackageName(m); err != nil {
			return err
		}
	}

	wsDir := filepath.Join(dir, name)
	if _, err := os.Stat(wsDir); err == nil && !force {
		return fmt.Errorf("workspace %q already exists (use --force to overwrite)", name)
	}

	if len(members) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --member to specify members")
		}
		var err error
		members, err = interactiveAddMembers()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	if err := scaffoldWorkspace(wsDir, name, virtual, members); err != nil {
		return err
	}

	if !noGit {
		initGitRepo(cmd, wsDir)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workspace %q created at %s\n", name, wsDir)
	return nil
}

// scaffoldWorkspace writes the root manifest, the member packages, and a
// starter docs tree.
func scaffoldWorkspace(wsDir, name string, virtual bool, members []string) error {
	for _, m := range members {
		if err := writeMemberPackage(filepath.Join(wsDir, "packages", m), m); err != nil {
			return err
		}
	}

	root := rootManifest(name, virtual)
	if err := writeFile(filepath.Join(wsDir, manifest.Filename), root); err != nil {
		return fmt.Errorf("writing root manifest: %w", err)
	}
	if !virtual {
		if err := writeSourceTree(wsDir, name); err != nil {
			return err
		}
	}

	// Validate what we just generated before declaring success.
	if _, err := manifest.Load(filepath.Join(wsDir, manifest.Filename)); err != nil {
		return fmt.Errorf("generated manifest is invalid: %w", err)
	}

	if err := writeFile(filepath.Join(wsDir, "mkdocs.yml"), docsConfigTemplate(name)); err != nil {
		return fmt.Errorf("writing docs config: %w", err)
	}
	if err := writeFile(filepath.Join(wsDir, "docs", "index.md"), "# "+name+"\n\nWorkspace documentation.\n"); err != nil {
		return fmt.Errorf("writing docs index: %w", err)
	}
	return nil
}

func rootManifest(name string, virtual bool) string {
	var b strings.Builder
	if !virtual {
		b.WriteString("[project]\n")
		b.WriteString("name = \"" + name + "\"\n")
		b.WriteString("version = \"0.1.0\"\n")
		b.WriteString("requires-python = \">=3.10\"\n")
		b.WriteString("\n")
	}
	b.WriteString("[tool.uv.workspace]\n")
	b.WriteString("members = [\"packages/*\"]\n")
	return b.String()
}

func writeMemberPackage(dir, name string) error {
	content := "[project]\n" +
		"name = \"" + name + "\"\n" +
		"version = \"0.1.0\"\n" +
		"requires-python = \">=3.10\"\n"
	if err := writeFile(filepath.Join(dir, manifest.Filename), content); err != nil {
		return fmt.Errorf("writing member %s: %w", name, err)
	}
	return writeSourceTree(dir, name)
}

// writeSourceTree creates the src layout with an importable package.
func writeSourceTree(dir, name string) error {
	module := strings.ReplaceAll(name, "-", "_")
	initPath := filepath.Join(dir, "src", module, "__init__.py")
	return writeFile(initPath, "")
}

func docsConfigTemplate(name string) string {
	return "site_name: " + name + "\n\n" +
		"nav:\n" +
		"  - index.md\n\n" +
		"markdown_extensions:\n" +
		"  - admonition\n" +
		"  - toc\n"
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // workspace dirs need to be world-readable
		return err
	}
	return os.WriteFile(path, []byte(content), 0644) //nolint:gosec // generated files need to be readable
}

// initGitRepo initializes a git repository in the workspace directory.
// Errors are reported as warnings and do not prevent workspace creation.
func initGitRepo(cmd *cobra.Command, wsDir string) {
	if !git.IsInstalled() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: git is not installed; skipping git initialization\n")
		return
	}

	if git.IsRepo(wsDir) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Git repository already exists in %s; skipping git init\n", wsDir)
		return
	}

	if err := git.Init(wsDir); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: git init failed: %v\n", err)
		return
	}

	if err := writeFile(filepath.Join(wsDir, ".gitignore"), ".venv/\n"); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to write .gitignore: %v\n", err)
		return
	}

	if err := git.Add(wsDir, "."); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: git add failed: %v\n", err)
		return
	}

	if err := git.Commit(wsDir, "Initialize workspace"); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: git commit failed: %v\n", err)
	}
}
