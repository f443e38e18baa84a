package main

import (
	"testing"
)

func TestRunCmd_inMember(t *testing.T) {
	dir := fixtureWorkspace(t)

	// `true` exits zero; the point is flag plumbing and directory selection.
	if _, err := execute(t, "run", "--directory", dir, "--package", "seeds", "--", "true"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestRunCmd_unknownPackage(t *testing.T) {
	dir := fixtureWorkspace(t)

	_, err := execute(t, "run", "--directory", dir, "--package", "ghost", "--", "true")
	if err == nil {
		t.Fatal("run should fail for an unknown package")
	}
}

func TestRunCmd_virtualRootNeedsPackage(t *testing.T) {
	dir := fixtureWorkspace(t)

	_, err := execute(t, "run", "--directory", dir, "--", "true")
	if err == nil {
		t.Fatal("run without --package should fail in a virtual workspace")
	}
}

func TestRunCmd_noCommand(t *testing.T) {
	dir := fixtureWorkspace(t)

	if _, err := execute(t, "run", "--directory", dir, "--package", "seeds"); err == nil {
		t.Fatal("run without a command should fail")
	}
}
