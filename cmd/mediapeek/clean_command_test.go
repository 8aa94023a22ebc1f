package main

import (
	"os"
	"path/filepath"
	"testing"

	"mediapeek/internal/testsupport"
)

func TestCleanRemovesLeftoverSessions(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	leftover := filepath.Join(env.cfg.SessionsDir(), "0f0f0f0f-dead-beef-0000-000000000000")
	if err := os.MkdirAll(leftover, 0o755); err != nil {
		t.Fatalf("mkdir leftover session: %v", err)
	}
	if err := os.WriteFile(filepath.Join(leftover, "header.bin"), []byte("stale"), 0o644); err != nil {
		t.Fatalf("write leftover window: %v", err)
	}

	out, _, err := runCLI(t, []string{"clean"}, env.configPath)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	requireContains(t, out, "Removed 1 scratch sessions")

	if _, err := os.Stat(leftover); !os.IsNotExist(err) {
		t.Fatalf("expected leftover session to be removed, stat err: %v", err)
	}
}

func TestCleanEmptyWorkspace(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, _, err := runCLI(t, []string{"clean"}, env.configPath)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	requireContains(t, out, "Removed 0 scratch sessions")
}
