package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mediasweep/internal/catalog"
	"mediasweep/internal/config"
	"mediasweep/internal/pathcheck"
	"mediasweep/internal/preflight"
	"mediasweep/internal/reconcile"
	"mediasweep/internal/runlock"
	"mediasweep/internal/snapshot"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	var noBackup bool
	var concurrency int

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove catalog entries whose file is missing",
		Long: `Clean reads the catalog, reports entries whose file no longer exists, and
deletes those entries after an explicit confirmation. A verified backup of
the database is offered first (--no-backup skips the offer). The media server
must be stopped; clean refuses to mutate a live server's database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				out := cmd.OutOrStdout()
				rawIn := cmd.InOrStdin()
				// One buffered reader across both prompts, so the second
				// question sees the answer the first one didn't consume.
				in := bufio.NewReader(rawIn)

				results := preflight.RunAll(cmd.Context(), cfg)
				if !preflight.AllPassed(results) {
					fmt.Fprintln(out, renderPreflightTable(results))
					return errors.New("preflight checks failed; resolve them or use `mediasweep scan` for a read-only report")
				}

				// Prompting needs a human unless the caller pre-answered.
				if !assumeYes && rawIn == os.Stdin && !stdinIsInteractive() {
					return errors.New("stdin is not a terminal; rerun with --yes to skip confirmation, or use `mediasweep scan`")
				}

				lock, err := runlock.Acquire(cfg.LockPath())
				if err != nil {
					return err
				}
				defer func() {
					_ = lock.Release()
				}()

				confirm := func(report *reconcile.Report) bool {
					fmt.Fprintln(out, renderMissingTable(report.Missing))
					fmt.Fprintf(out, "%d of %d eligible entries are missing their files.\n",
						len(report.Missing), report.Total())

					proceed := assumeYes
					if !proceed {
						proceed = askYesNo(in, out,
							fmt.Sprintf("Delete these %d catalog entries?", len(report.Missing)), false)
					}
					if !proceed {
						return false
					}

					wantBackup := !noBackup
					if wantBackup && !assumeYes {
						wantBackup = askYesNo(in, out, "Back up the catalog database first?", true)
					}
					if wantBackup {
						backup, err := snapshot.Create(cfg.Paths.CatalogDB, cfg.Paths.BackupDir)
						if err != nil {
							// Refusing beats deleting without the safety
							// net the user asked for.
							fmt.Fprintf(out, "Backup failed, aborting: %v\n", err)
							logger.Error("catalog backup failed", slog.Any("error", err))
							return false
						}
						fmt.Fprintf(out, "Catalog backed up to %s\n", backup)
					}
					return true
				}

				runner := reconcile.NewRunner(store, store, pathcheck.New(logger), reconcile.Options{
					Concurrency: resolveConcurrency(concurrency, cfg),
					Confirm:     confirm,
					Logger:      logger,
				})
				report, err := runner.Run(cmd.Context())
				if err != nil {
					return err
				}

				switch report.Status {
				case reconcile.StatusAllPresent:
					fmt.Fprintf(out, "All %d eligible catalog entries have files on disk. Nothing to do.\n", report.Total())
				case reconcile.StatusAborted:
					fmt.Fprintln(out, "Aborted. No changes were made.")
				case reconcile.StatusApplied:
					fmt.Fprintln(out, renderOutcomeTable(report.Outcomes))
					fmt.Fprintf(out, "Removed %d of %d catalog entries.\n", report.Succeeded(), report.Attempted())
					if failed := report.Failed(); failed > 0 {
						return fmt.Errorf("%d of %d deletions failed; the remaining entries are untouched in the catalog", failed, report.Attempted())
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the pre-deletion database backup")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Parallel existence checks (default from config)")
	return cmd
}
