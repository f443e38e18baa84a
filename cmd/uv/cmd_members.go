package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/zackelia/uv/internal/ui"
	"github.com/zackelia/uv/internal/workspace"
)

func newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "List the discovered workspace members",
		RunE:  runMembers,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type memberInfo struct {
	Name           string `json:"name"`
	Version        string `json:"version,omitempty"`
	Directory      string `json:"directory"`
	RequiresPython string `json:"requires_python,omitempty"`
	Root           bool   `json:"root,omitempty"`
	Dependencies   int    `json:"dependencies"`
}

func runMembers(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ws, err := discoverWorkspace(cmd)
	if err != nil {
		return err
	}

	infos := make([]memberInfo, 0, len(ws.Members))
	for _, m := range ws.Members {
		infos = append(infos, collectMember(m))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tbl := ui.NewTable(out, "package", "version", "directory", "python", "deps")
	for _, info := range infos {
		dir := info.Directory
		if info.Root {
			dir += " (root)"
		}
		tbl.Row(info.Name, info.Version, dir, info.RequiresPython, info.Dependencies)
	}
	return tbl.Flush()
}

func collectMember(m workspace.Member) memberInfo {
	return memberInfo{
		Name:           m.Name,
		Version:        m.Manifest.Project.Version,
		Directory:      m.RelDir,
		RequiresPython: m.Manifest.Project.RequiresPython,
		Root:           m.RelDir == ".",
		Dependencies:   len(m.Manifest.Project.Dependencies),
	}
}
