package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"perfin/internal/library"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Saved filters evaluated across all stamps",
	}

	filterCmd.AddCommand(newFilterCreateCommand(ctx))
	filterCmd.AddCommand(newFilterListCommand(ctx))
	filterCmd.AddCommand(newFilterRunCommand(ctx))
	filterCmd.AddCommand(newFilterDeleteCommand(ctx))

	return filterCmd
}

func newFilterCreateCommand(ctx *commandContext) *cobra.Command {
	var status string
	var country string
	var lowerBound string
	var upperBound string
	var yearStart int
	var yearEnd int

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a saved filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := &library.SavedFilter{
				Name:       args[0],
				Country:    country,
				LowerBound: lowerBound,
				UpperBound: upperBound,
				YearStart:  yearStart,
				YearEnd:    yearEnd,
			}
			if status != "" {
				parsed, ok := library.ParseStatus(status)
				if !ok {
					return fmt.Errorf("unknown status %q", status)
				}
				filter.Status = parsed
			}
			return ctx.withStore(func(store *library.Store) error {
				created, err := store.CreateSavedFilter(cmd.Context(), filter)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created filter %d: %s\n", created.ID, created.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Match a single status")
	cmd.Flags().StringVar(&country, "country", "", "Match a country (case-insensitive)")
	cmd.Flags().StringVar(&lowerBound, "from", "", "Catalog number lower bound")
	cmd.Flags().StringVar(&upperBound, "to", "", "Catalog number upper bound")
	cmd.Flags().IntVar(&yearStart, "year-start", 0, "Earliest year of issue")
	cmd.Flags().IntVar(&yearEnd, "year-end", 0, "Latest year of issue")
	return cmd
}

func newFilterListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				filters, err := store.ListSavedFilters(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, filters)
				}
				if len(filters) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No saved filters")
					return nil
				}
				rows := make([][]string, 0, len(filters))
				for _, f := range filters {
					rows = append(rows, []string{
						strconv.FormatInt(f.ID, 10),
						f.Name,
						orDash(string(f.Status)),
						orDash(f.Country),
						orDash(formatCatalogRange(f.LowerBound, f.UpperBound)),
						orDash(formatYearRange(f.YearStart, f.YearEnd)),
					})
				}
				table := renderTable(
					[]string{"ID", "Name", "Status", "Country", "Numbers", "Years"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newFilterRunCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run <name-or-id>",
		Short: "Run a saved filter and list matching stamps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				filter, err := resolveFilter(cmd, store, args[0])
				if err != nil {
					return err
				}
				stamps, err := store.RunSavedFilter(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, stamps)
				}
				if len(stamps) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No matching stamps")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderStampTable(stamps))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newFilterDeleteCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Delete a saved filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				filter, err := resolveFilter(cmd, store, args[0])
				if err != nil {
					return err
				}
				ok, err := confirm(cmd, assumeYes, fmt.Sprintf("Delete filter %q?", filter.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
				deleted, err := store.DeleteSavedFilter(cmd.Context(), filter.ID)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("filter %d not found", filter.ID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted filter %d\n", filter.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// resolveFilter accepts a numeric id or a filter name.
func resolveFilter(cmd *cobra.Command, store *library.Store, arg string) (*library.SavedFilter, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil && id > 0 {
		filter, err := store.GetSavedFilter(cmd.Context(), id)
		if err != nil {
			return nil, err
		}
		if filter != nil {
			return filter, nil
		}
	}
	filter, err := store.FindSavedFilterByName(cmd.Context(), arg)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return nil, fmt.Errorf("filter %q not found", arg)
	}
	return filter, nil
}

func formatCatalogRange(lower, upper string) string {
	switch {
	case lower == "" && upper == "":
		return ""
	case upper == "":
		return lower + "-"
	case lower == "":
		return "-" + upper
	default:
		return lower + "-" + upper
	}
}
