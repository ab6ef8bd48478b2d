// Package testsupport provides shared helpers for exercising the catalog
// store and reconciliation engine against temp databases and files.
package testsupport

import (
	"path/filepath"
	"testing"

	"mediasweep/internal/config"
)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogDB = filepath.Join(base, "library.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.BackupDir = filepath.Join(base, "backups")
	cfg.Reconcile.Concurrency = 4

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// BaseDir returns the temp root backing a config from NewConfig.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CatalogDB)
}
