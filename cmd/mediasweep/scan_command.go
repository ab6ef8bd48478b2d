package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediasweep/internal/catalog"
	"mediasweep/internal/config"
	"mediasweep/internal/pathcheck"
	"mediasweep/internal/preflight"
	"mediasweep/internal/reconcile"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report catalog entries whose file is missing (read-only)",
		Long: `Scan reads the catalog, checks every eligible entry's path on disk, and
reports the ones whose file no longer exists. Nothing is deleted and no
confirmation is requested.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				out := cmd.OutOrStdout()

				// Informational only: a dry run has no side effects, so
				// failing checks are shown but never block.
				results := preflight.RunAll(cmd.Context(), cfg)
				if !preflight.AllPassed(results) {
					fmt.Fprintln(out, renderPreflightTable(results))
				}

				runner := reconcile.NewRunner(store, nil, pathcheck.New(logger), reconcile.Options{
					DryRun:      true,
					Concurrency: resolveConcurrency(concurrency, cfg),
					Logger:      logger,
				})
				report, err := runner.Run(cmd.Context())
				if err != nil {
					return err
				}

				if malformed := store.MalformedRows(); malformed > 0 {
					logger.Debug("skipped malformed catalog rows", "count", malformed)
				}

				switch report.Status {
				case reconcile.StatusAllPresent:
					fmt.Fprintf(out, "All %d eligible catalog entries have files on disk.\n", report.Total())
				default:
					fmt.Fprintln(out, renderMissingTable(report.Missing))
					fmt.Fprintf(out, "%d of %d eligible entries are missing their files (dry run; nothing deleted).\n",
						len(report.Missing), report.Total())
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Parallel existence checks (default from config)")
	return cmd
}

func resolveConcurrency(flag int, cfg *config.Config) int {
	if flag > 0 {
		return flag
	}
	return cfg.Reconcile.Concurrency
}
