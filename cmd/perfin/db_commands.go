package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"perfin/internal/library"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Library database maintenance",
	}

	dbCmd.AddCommand(newDBStatsCommand(ctx))
	dbCmd.AddCommand(newDBCheckCommand(ctx))
	dbCmd.AddCommand(newDBWipeCommand(ctx))

	return dbCmd
}

func newDBStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count stamps per status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, stats)
				}
				rows := [][]string{
					{"owned", strconv.Itoa(stats.Owned)},
					{"wanted", strconv.Itoa(stats.Wanted)},
					{"sold", strconv.Itoa(stats.Sold)},
					{"total", strconv.Itoa(stats.Total)},
				}
				table := renderTable([]string{"Status", "Count"}, rows,
					[]columnAlignment{alignLeft, alignRight})
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDBCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check database integrity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				health, err := store.CheckHealth(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader("Database health", colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, renderCheckLine("File", health.DatabaseExists, health.DBPath, colorize))
				fmt.Fprintln(out, renderCheckLine("Readable", health.DatabaseReadable, "", colorize))
				tablesOK := len(health.MissingTables) == 0
				detail := ""
				if !tablesOK {
					detail = "missing " + strings.Join(health.MissingTables, ", ")
				}
				fmt.Fprintln(out, renderCheckLine("Tables", tablesOK, detail, colorize))
				fmt.Fprintln(out, renderCheckLine("Integrity", health.IntegrityCheck, "", colorize))
				fmt.Fprintf(out, "  Stamps: %d\n", health.TotalStamps)
				if health.Error != "" {
					return fmt.Errorf("database unhealthy: %s", health.Error)
				}
				return nil
			})
		},
	}
}

func newDBWipeCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every record in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				ok, err := confirm(cmd, assumeYes, "Delete ALL collections, albums, stamps, and filters?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
				if err := store.Wipe(cmd.Context()); err != nil {
					return err
				}
				ctx.log().Info("library wiped", "component", "cli")
				fmt.Fprintln(cmd.OutOrStdout(), "Library wiped")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
