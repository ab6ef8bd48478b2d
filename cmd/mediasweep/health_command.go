package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediasweep/internal/catalog"
	"mediasweep/internal/config"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show catalog database diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				health, err := store.CheckHealth(cmd.Context())
				out := cmd.OutOrStdout()

				fmt.Fprintf(out, "Database:        %s\n", health.DBPath)
				fmt.Fprintf(out, "Exists:          %s\n", yesNo(health.DatabaseExists))
				fmt.Fprintf(out, "Readable:        %s\n", yesNo(health.DatabaseReadable))
				fmt.Fprintf(out, "Items table:     %s\n", yesNo(health.TableExists))
				fmt.Fprintf(out, "Total items:     %d\n", health.TotalItems)
				fmt.Fprintf(out, "Integrity check: %s\n", yesNo(health.IntegrityCheck))
				if health.Error != "" {
					fmt.Fprintf(out, "Last error:      %s\n", health.Error)
				}
				return err
			})
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
