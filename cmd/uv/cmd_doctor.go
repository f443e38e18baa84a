package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/git"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	// Check git.
	fmt.Fprint(out, "Checking git... ")
	if gitPath, err := exec.LookPath("git"); err != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  git is required for sync-releases. Install it from https://git-scm.com/")
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", gitPath)
	}

	// Check a Python interpreter.
	fmt.Fprint(out, "Checking python... ")
	if pyPath, pyVersion := findPython(); pyPath == "" {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  No python3 or python on PATH.")
		ok = false
	} else {
		fmt.Fprintf(out, "%s (%s)\n", pyVersion, pyPath)
	}

	// Check the workspace if run inside one.
	ws, loadErr := discoverWorkspace(cmd)
	if loadErr != nil {
		fmt.Fprintln(out, "No workspace found (skipping workspace checks)")
	} else {
		fmt.Fprintf(out, "Workspace: %s (%d members)\n", ws.Root, len(ws.Members))
		if info, err := os.Stat(ws.VenvDir()); err == nil && info.IsDir() {
			fmt.Fprintf(out, "Shared environment: %s\n", ws.VenvDir())
		} else {
			fmt.Fprintln(out, "Shared environment: not created")
		}
		if git.IsRepo(ws.Root) {
			fmt.Fprintln(out, "Git repository: present")
		} else {
			fmt.Fprintln(out, "Git repository: absent (sync-releases will not commit)")
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// findPython locates a Python interpreter and reports its version string.
func findPython() (path, version string) {
	for _, name := range []string{"python3", "python"} {
		p, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		out, verr := exec.Command(p, "--version").Output() //nolint:gosec // path comes from LookPath
		if verr != nil {
			return p, "version unknown"
		}
		return p, strings.TrimSpace(string(out))
	}
	return "", ""
}
