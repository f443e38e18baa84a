package main

import (
	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/workspace"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uv",
		Short:   "Workspace helper for Python monorepos",
		Version: version,
	}

	cmd.PersistentFlags().String("directory", ".", "Directory to resolve the workspace from")

	cmd.AddCommand(
		newInitCmd(),
		newMembersCmd(),
		newLockCmd(),
		newCheckCmd(),
		newRunCmd(),
		newDocsCmd(),
		newSyncReleasesCmd(),
		newDoctorCmd(),
	)

	return cmd
}

// discoverWorkspace resolves the workspace from the --directory flag by
// walking up to the nearest manifest that declares a workspace.
func discoverWorkspace(cmd *cobra.Command) (*workspace.Workspace, error) {
	dir, _ := cmd.Flags().GetString("directory")
	root, err := workspace.FindRoot(dir)
	if err != nil {
		return nil, err
	}
	return workspace.Discover(root)
}
