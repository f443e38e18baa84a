package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zackelia/uv/internal/manifest"
	"github.com/zackelia/uv/internal/testutil"
)

func TestDiscover_virtualRoot(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*"}, nil)
	testutil.WriteMember(t, dir, "packages/bird-feeder", "bird-feeder", ">=3.8")
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", ">=3.8")

	ws, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if !ws.Manifest.IsVirtual() {
		t.Error("root should be virtual")
	}
	if len(ws.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(ws.Members))
	}
	// Sorted by name.
	if ws.Members[0].Name != "bird-feeder" || ws.Members[1].Name != "seeds" {
		t.Errorf("member order = %s, %s", ws.Members[0].Name, ws.Members[1].Name)
	}
	if ws.Members[0].RelDir != "packages/bird-feeder" {
		t.Errorf("RelDir = %q", ws.Members[0].RelDir)
	}
	if ws.LockPath != filepath.Join(ws.Root, "uv.lock") {
		t.Errorf("LockPath = %q", ws.LockPath)
	}
}

func TestDiscover_rootPackageIsMember(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteRootPackage(t, dir, "albatross", []string{"packages/*"}, nil)
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", "")

	ws, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(ws.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(ws.Members))
	}
	root, err := ws.MemberByName("albatross")
	if err != nil {
		t.Fatalf("MemberByName(albatross): %v", err)
	}
	if root.RelDir != "." {
		t.Errorf("root member RelDir = %q, want .", root.RelDir)
	}
}

func TestDiscover_excludeAppliedAfterExpansion(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*"}, []string{"packages/seeds"})
	testutil.WriteMember(t, dir, "packages/bird-feeder", "bird-feeder", "")
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", "")

	ws, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(ws.Members) != 1 {
		t.Fatalf("members = %d, want 1", len(ws.Members))
	}
	if ws.Members[0].Name != "bird-feeder" {
		t.Errorf("member = %q, want bird-feeder", ws.Members[0].Name)
	}
}

func TestDiscover_patternWithoutPackages(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*"}, nil)
	// Directory matches but has no manifest.
	if err := os.MkdirAll(filepath.Join(dir, "packages", "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := Discover(dir)
	if err == nil {
		t.Fatal("Discover() should fail when a pattern matches no package directory")
	}
	if !strings.Contains(err.Error(), "matched no package directory") {
		t.Errorf("error = %v", err)
	}
}

func TestDiscover_duplicateNames(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*", "libs/*"}, nil)
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", "")
	testutil.WriteMember(t, dir, "libs/seeds", "seeds", "")

	_, err := Discover(dir)
	if err == nil {
		t.Fatal("Discover() should fail on duplicate member names")
	}
	if !strings.Contains(err.Error(), "duplicate member name") {
		t.Errorf("error = %v", err)
	}
}

func TestDiscover_overlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*", "packages/bird-*"}, nil)
	testutil.WriteMember(t, dir, "packages/bird-feeder", "bird-feeder", "")
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", "")

	ws, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(ws.Members) != 2 {
		t.Fatalf("members = %d, want 2 (directory matched twice is one member)", len(ws.Members))
	}
}

func TestDiscover_skipsPlainFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*"}, nil)
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", "")
	testutil.WriteFile(t, filepath.Join(dir, "packages", "README.md"), "# packages\n")

	ws, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(ws.Members) != 1 {
		t.Errorf("members = %d, want 1", len(ws.Members))
	}
}

func TestDiscover_noWorkspaceTable(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "pyproject.toml"), "[project]\nname = \"solo\"\n")

	_, err := Discover(dir)
	if err == nil {
		t.Fatal("Discover() should fail without [tool.uv.workspace]")
	}
}

func TestFindRoot(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*"}, nil)
	testutil.WriteMember(t, dir, "packages/seeds", "seeds", "")

	got, err := FindRoot(filepath.Join(dir, "packages", "seeds"))
	if err != nil {
		t.Fatalf("FindRoot() error: %v", err)
	}
	// t.TempDir may be behind a symlink on some platforms; compare resolved paths.
	wantResolved, _ := filepath.EvalSymlinks(dir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindRoot() = %q, want %q", got, dir)
	}
}

func TestFindRoot_notFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindRoot(dir); err == nil {
		t.Fatal("FindRoot() should fail outside a workspace")
	}
}

func TestMemberByName_unknown(t *testing.T) {
	ws := &Workspace{}
	if _, err := ws.MemberByName("nope"); err == nil {
		t.Fatal("MemberByName() should fail for unknown package")
	}
}

func TestMember_SourceDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVirtualRoot(t, dir, []string{"packages/*"}, nil)
	testutil.WriteMember(t, dir, "packages/bird-feeder", "bird-feeder", "")

	ws, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	m := ws.Members[0]
	want := filepath.Join(m.Dir, "src")
	if got := m.SourceDir(); got != want {
		t.Errorf("SourceDir() = %q, want %q", got, want)
	}
}

func TestRequiresPython(t *testing.T) {
	tests := []struct {
		name string
		reqs []string
		want string
		err  bool
	}{
		{"union keeps the lowest bound", []string{">=3.8", ">=3.10", ">=3.9"}, ">=3.8", false},
		{"single", []string{">=3.12"}, ">=3.12", false},
		{"none", []string{"", ""}, "", false},
		{"compound widened to lowest bound", []string{">=3.8, <4", ">=3.9"}, ">=3.8", false},
		{"uniform compound kept verbatim", []string{">=3.8, <4", ">=3.8, <4"}, ">=3.8, <4", false},
		{"unbounded carried verbatim", []string{"==3.11.*"}, "==3.11.*", false},
		{"conflicting forms", []string{"==3.11.*", ">=3.8"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := &Workspace{}
			for i, r := range tt.reqs {
				ws.Members = append(ws.Members, Member{
					Name: string(rune('a' + i)),
					Manifest: &manifest.Pyproject{
						Project: &manifest.Project{Name: string(rune('a' + i)), RequiresPython: r},
					},
				})
			}
			got, err := ws.RequiresPython()
			if (err != nil) != tt.err {
				t.Fatalf("RequiresPython() error = %v, wantErr %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("RequiresPython() = %q, want %q", got, tt.want)
			}
		})
	}
}
