package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo returns true if the directory is a git repository.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Init runs git init in the given directory.
func Init(dir string) error {
	return run(dir, "init")
}

// CurrentBranch returns the current branch name, or empty string if detached.
func CurrentBranch(dir string) (string, error) {
	out, err := output(dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD: symbolic-ref fails.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// BranchExists checks if a local branch exists.
func BranchExists(dir, branch string) (bool, error) {
	err := run(dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateBranch creates and checks out a branch from the current HEAD.
func CreateBranch(dir, branch string) error {
	return run(dir, "checkout", "-b", branch)
}

// Checkout checks out the given ref.
func Checkout(dir, ref string) error {
	return run(dir, "checkout", ref)
}

// IsDirty returns true if the working tree has uncommitted changes.
func IsDirty(dir string) (bool, error) {
	out, err := output(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// Add stages the given paths. Only the listed paths are staged, so a
// commit after Add is restricted to them.
func Add(dir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	return run(dir, args...)
}

// Commit creates a commit with the given message. If user.name or
// user.email is not configured, repo-local fallback values are set first.
func Commit(dir, message string) error {
	if err := ensureCommitIdentity(dir); err != nil {
		return fmt.Errorf("setting commit identity: %w", err)
	}
	return run(dir, "commit", "-m", message)
}

// HeadCommit returns the short SHA of HEAD.
func HeadCommit(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ensureCommitIdentity sets repo-local user.name/user.email if unset.
func ensureCommitIdentity(dir string) error {
	if _, err := output(dir, "config", "user.name"); err != nil {
		if err2 := run(dir, "config", "user.name", "uv-release-sync"); err2 != nil {
			return err2
		}
	}
	if _, err := output(dir, "config", "user.email"); err != nil {
		if err2 := run(dir, "config", "user.email", "release-sync@localhost"); err2 != nil {
			return err2
		}
	}
	return nil
}

// run executes a git command. Stderr is captured and included in the error
// message on failure.
func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return nil
}

// output executes a git command and returns its stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
