package main

import (
	"slices"
	"strings"
	"testing"
)

func TestCleanDeclinedLeavesCatalogUntouched(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)

	out, err := env.run(t, "n\n", "clean")
	if err != nil {
		t.Fatalf("declined clean must not fail: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Aborted. No changes were made.") {
		t.Fatalf("expected abort message:\n%s", out)
	}
	if got := env.eligibleIDs(t); !slices.Equal(got, []string{"m1", "m2", "e1"}) {
		t.Fatalf("declined clean mutated the catalog: %v", got)
	}
	if n := env.backupCount(t); n != 0 {
		t.Fatalf("declined clean created %d backups", n)
	}
}

func TestCleanConfirmedRemovesMissing(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)

	// First answer confirms the deletion, second accepts the backup.
	out, err := env.run(t, "y\ny\n", "clean")
	if err != nil {
		t.Fatalf("clean failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Removed 1 of 1 catalog entries.") {
		t.Fatalf("expected removal summary:\n%s", out)
	}
	if got := env.eligibleIDs(t); !slices.Equal(got, []string{"m1", "e1"}) {
		t.Fatalf("unexpected surviving records: %v", got)
	}
	if n := env.backupCount(t); n != 1 {
		t.Fatalf("expected one backup, have %d", n)
	}
}

func TestCleanBackupDeclined(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)

	out, err := env.run(t, "y\nn\n", "clean")
	if err != nil {
		t.Fatalf("clean failed: %v\n%s", err, out)
	}
	if got := env.eligibleIDs(t); !slices.Equal(got, []string{"m1", "e1"}) {
		t.Fatalf("declining the backup must not cancel the deletion: %v", got)
	}
	if n := env.backupCount(t); n != 0 {
		t.Fatalf("declined backup still wrote %d files", n)
	}
}

func TestCleanAssumeYesSkipsPrompt(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)

	out, err := env.run(t, "", "clean", "--yes")
	if err != nil {
		t.Fatalf("clean --yes failed: %v\n%s", err, out)
	}
	if strings.Contains(out, "[y/N]") {
		t.Fatalf("--yes must not prompt:\n%s", out)
	}
	if got := env.eligibleIDs(t); !slices.Equal(got, []string{"m1", "e1"}) {
		t.Fatalf("unexpected surviving records: %v", got)
	}
}

func TestCleanNoBackup(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)

	out, err := env.run(t, "", "clean", "--yes", "--no-backup")
	if err != nil {
		t.Fatalf("clean failed: %v\n%s", err, out)
	}
	if n := env.backupCount(t); n != 0 {
		t.Fatalf("--no-backup still wrote %d backups", n)
	}
	if strings.Contains(out, "backed up") {
		t.Fatalf("--no-backup must not report a backup:\n%s", out)
	}
}

func TestCleanAllPresentNeverPrompts(t *testing.T) {
	env := setupCLIEnv(t)
	env.seedLibrary(t)
	env.writeBrazil(t)

	// Empty stdin: any prompt would read EOF and decline, so the
	// all-present wording proves no prompt happened.
	out, err := env.run(t, "", "clean")
	if err != nil {
		t.Fatalf("clean failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All 3 eligible catalog entries have files on disk. Nothing to do.") {
		t.Fatalf("expected all-present summary:\n%s", out)
	}
	if got := env.eligibleIDs(t); len(got) != 3 {
		t.Fatalf("all-present clean mutated the catalog: %v", got)
	}
}

func TestCleanMissingDatabaseFailsPreflight(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := env.run(t, "", "clean", "--yes")
	if err == nil {
		t.Fatalf("expected clean to fail without a catalog database:\n%s", out)
	}
}
