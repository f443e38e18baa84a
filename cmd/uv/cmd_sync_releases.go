package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/git"
	"github.com/zackelia/uv/internal/release"
)

const defaultEndpoint = "https://api.github.com/repos/astral-sh/uv"

func newSyncReleasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-releases",
		Short: "Update the pinned release-metadata file from the distribution source",
		RunE:  runSyncReleases,
	}
	cmd.Flags().String("endpoint", defaultEndpoint, "Distribution endpoint base URL")
	cmd.Flags().Bool("check", false, "Exit nonzero if the pinned file is stale, without writing")
	cmd.Flags().Bool("no-commit", false, "Write the file but skip the branch and commit")
	return cmd
}

func runSyncReleases(cmd *cobra.Command, _ []string) error {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	checkOnly, _ := cmd.Flags().GetBool("check")
	noCommit, _ := cmd.Flags().GetBool("no-commit")

	ws, err := discoverWorkspace(cmd)
	if err != nil {
		return err
	}
	pinPath := filepath.Join(ws.Root, release.PinFilename)

	rel, err := release.NewClient(endpoint).Latest(cmd.Context())
	if err != nil {
		return err
	}

	content, err := release.Render(rel)
	if err != nil {
		return err
	}

	stale, err := release.NeedsUpdate(pinPath, content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !stale {
		_, _ = fmt.Fprintf(out, "%s is up to date (%s)\n", release.PinFilename, rel.TagName)
		return nil
	}
	if checkOnly {
		return fmt.Errorf("%s is stale (latest release is %s)", release.PinFilename, rel.TagName)
	}

	if err := os.WriteFile(pinPath, content, 0644); err != nil { //nolint:gosec // pinned metadata needs to be readable
		return fmt.Errorf("writing %s: %w", release.PinFilename, err)
	}
	_, _ = fmt.Fprintf(out, "Updated %s to %s\n", release.PinFilename, rel.TagName)

	if noCommit {
		return nil
	}
	return commitUpdate(cmd, ws.Root, rel)
}

// commitUpdate creates the fixed update branch, commits only the pinned
// file, and prints the pull-request fields for the CI action to consume.
func commitUpdate(cmd *cobra.Command, root string, rel *release.Release) error {
	if !git.IsRepo(root) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: workspace is not a git repository; skipping commit")
		return nil
	}

	prop, err := release.BuildProposal(rel)
	if err != nil {
		return err
	}

	exists, err := git.BranchExists(root, prop.Branch)
	if err != nil {
		return err
	}
	if exists {
		if err := git.Checkout(root, prop.Branch); err != nil {
			return err
		}
	} else if err := git.CreateBranch(root, prop.Branch); err != nil {
		return err
	}

	if err := git.Add(root, release.PinFilename); err != nil {
		return err
	}
	if err := git.Commit(root, prop.CommitMessage); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Committed on branch %s\n", prop.Branch)
	_, _ = fmt.Fprintf(out, "PR title: %s\n", prop.Title)
	_, _ = fmt.Fprintf(out, "PR body:\n%s", prop.Body)
	return nil
}
