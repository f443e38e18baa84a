package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/docs"
	"github.com/zackelia/uv/internal/lock"
	"github.com/zackelia/uv/internal/ui"
	"github.com/zackelia/uv/internal/workspace"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate workspace invariants and lock freshness",
		RunE:  runCheck,
	}
	cmd.Flags().Bool("locked", false, "Fail if the lockfile is missing or stale")
	cmd.Flags().Bool("frozen", false, "Use the lockfile without checking the manifests")
	cmd.Flags().Bool("docs", false, "Also check the docs-site configuration")
	cmd.Flags().String("docs-config", docs.Filename, "Docs-site configuration file, relative to the workspace root")
	cmd.Flags().Int("jobs", 4, "Number of parallel member checks")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	locked, _ := cmd.Flags().GetBool("locked")
	frozen, _ := cmd.Flags().GetBool("frozen")
	checkDocs, _ := cmd.Flags().GetBool("docs")
	docsConfig, _ := cmd.Flags().GetString("docs-config")
	jobs, _ := cmd.Flags().GetInt("jobs")

	if jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1 (got %d)", jobs)
	}
	if locked && frozen {
		return fmt.Errorf("--locked and --frozen are mutually exclusive")
	}

	ws, err := discoverWorkspace(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false

	problems := checkMembersParallel(ws, jobs, ui.NewProgress(cmd.ErrOrStderr(), len(ws.Members)))
	for _, p := range problems {
		_, _ = fmt.Fprintln(out, ui.Fail(p))
		failed = true
	}

	if requires, rerr := ws.RequiresPython(); rerr != nil {
		_, _ = fmt.Fprintln(out, ui.Fail(rerr.Error()))
		failed = true
	} else if requires != "" {
		_, _ = fmt.Fprintf(out, "requires-python: %s\n", requires)
	}

	if err := checkLock(ws, locked, frozen, out); err != nil {
		return err
	}

	if checkDocs {
		if err := runDocsReport(out, ws.Root, docsConfig); err != nil {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("check failed")
	}
	_, _ = fmt.Fprintf(out, "Checked %d member(s): ok\n", len(ws.Members))
	return nil
}

// checkMembersParallel runs per-member validation with a bounded worker
// pool and returns the collected problems.
func checkMembersParallel(ws *workspace.Workspace, jobs int, progress *ui.Progress) []string {
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var problems []string

	for _, m := range ws.Members {
		wg.Add(1)
		go func(m workspace.Member) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			found := ws.CheckMember(m)
			mu.Lock()
			problems = append(problems, found...)
			mu.Unlock()
			progress.Done(m.Name + " checked")
		}(m)
	}

	wg.Wait()
	return problems
}

func checkLock(ws *workspace.Workspace, locked, frozen bool, out io.Writer) error {
	if frozen {
		if _, err := os.Stat(ws.LockPath); err != nil {
			return lock.ErrMissing
		}
		if _, err := lock.Load(ws.LockPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "lockfile: present (not verified, --frozen)")
		return nil
	}

	_, err := lock.Verify(ws)
	switch {
	case err == nil:
		_, _ = fmt.Fprintln(out, "lockfile: up to date")
		return nil
	case errors.Is(err, lock.ErrMissing) && !locked:
		_, _ = fmt.Fprintln(out, "lockfile: not present")
		return nil
	case errors.Is(err, lock.ErrStale) && !locked:
		_, _ = fmt.Fprintln(out, ui.Warn("lockfile is stale; run `uv lock`"))
		return nil
	default:
		if locked {
			return fmt.Errorf("%w (--locked was provided)", err)
		}
		return err
	}
}

// runDocsReport loads the docs config, runs the consistency checks, and
// prints the report. A non-nil error means problems were found.
func runDocsReport(out io.Writer, root, configPath string) error {
	cfg, err := docs.Load(filepath.Join(root, filepath.FromSlash(configPath)))
	if err != nil {
		_, _ = fmt.Fprintln(out, ui.Fail(err.Error()))
		return err
	}

	report := docs.Check(cfg, root)
	for _, w := range report.Warnings {
		_, _ = fmt.Fprintln(out, ui.Warn(w))
	}
	for _, p := range report.Problems {
		_, _ = fmt.Fprintln(out, ui.Fail(p))
	}
	if report.OK() {
		_, _ = fmt.Fprintf(out, "docs: %d page(s) ok\n", len(cfg.Pages()))
	}
	return report.Err()
}
