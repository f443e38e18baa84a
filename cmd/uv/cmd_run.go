package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --package <name> -- <command...>",
		Short: "Run a command inside one workspace member",
		RunE:  runRun,
	}
	cmd.Flags().String("package", "", "Workspace member to run in (default: the root package)")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	pkg, _ := cmd.Flags().GetString("package")

	if len(args) == 0 {
		return fmt.Errorf("usage: uv run [--package <name>] -- <command...>")
	}

	ws, err := discoverWorkspace(cmd)
	if err != nil {
		return err
	}

	dir := ws.Root
	if pkg != "" {
		m, err := ws.MemberByName(pkg)
		if err != nil {
			return err
		}
		dir = m.Dir
	} else if ws.Manifest.IsVirtual() {
		return fmt.Errorf("the workspace root is virtual; use --package to pick a member")
	}

	c := exec.Command(args[0], args[1:]...) //nolint:gosec // command comes from the user's own invocation
	c.Dir = dir
	c.Env = append(os.Environ(), "VIRTUAL_ENV="+ws.VenvDir())
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
