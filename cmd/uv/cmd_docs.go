package main

import (
	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/docs"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Documentation-site configuration commands",
	}
	cmd.AddCommand(newDocsCheckCmd())
	return cmd
}

func newDocsCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the docs-site configuration for consistency",
		RunE:  runDocsCheck,
	}
	cmd.Flags().String("config", docs.Filename, "Docs-site configuration file, relative to the workspace root")
	return cmd
}

func runDocsCheck(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	ws, err := discoverWorkspace(cmd)
	if err != nil {
		return err
	}

	return runDocsReport(cmd.OutOrStdout(), ws.Root, configPath)
}
