package preflight

import (
	"context"

	"mediasweep/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckCatalogFile(cfg.Paths.CatalogDB),
	}
	if cfg.Server.URL != "" {
		results = append(results, CheckServerStopped(ctx, cfg.Server.URL))
	}
	results = append(results, CheckBackupDir(cfg.Paths.BackupDir))
	return results
}

// AllPassed reports whether every check in results passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
