package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/lock"
)

func newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Write the shared workspace lockfile",
		RunE:  runLock,
	}
}

func runLock(cmd *cobra.Command, _ []string) error {
	ws, err := discoverWorkspace(cmd)
	if err != nil {
		return err
	}

	lf, err := lock.Build(ws, version)
	if err != nil {
		return err
	}
	if err := lock.Save(ws.LockPath, lf); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Locked %d member(s) in %s\n", len(lf.Members), ws.LockPath)
	return nil
}
