package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"perfin/internal/library"
)

func newStampCommand(ctx *commandContext) *cobra.Command {
	stampCmd := &cobra.Command{
		Use:   "stamp",
		Short: "Manage stamp records",
	}

	stampCmd.AddCommand(newStampAddCommand(ctx))
	stampCmd.AddCommand(newStampListCommand(ctx))
	stampCmd.AddCommand(newStampShowCommand(ctx))
	stampCmd.AddCommand(newStampUpdateCommand(ctx))
	stampCmd.AddCommand(newStampStatusCommand(ctx))
	stampCmd.AddCommand(newStampDeleteCommand(ctx))

	return stampCmd
}

type stampFlags struct {
	system       string
	country      string
	year         int
	denomination string
	color        string
	condition    string
	status       string
	priceCents   int64
	notes        string
}

func (f *stampFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.system, "system", "", "Catalog system (defaults from config)")
	cmd.Flags().StringVar(&f.country, "country", "", "Country of issue")
	cmd.Flags().IntVar(&f.year, "year", 0, "Year of issue")
	cmd.Flags().StringVar(&f.denomination, "denomination", "", "Face value as printed")
	cmd.Flags().StringVar(&f.color, "color", "", "Color description")
	cmd.Flags().StringVar(&f.condition, "condition", "", "Condition (defaults from config)")
	cmd.Flags().StringVar(&f.status, "status", "", "owned, wanted, or sold (defaults from config)")
	cmd.Flags().Int64Var(&f.priceCents, "price-cents", 0, "Purchase price in cents")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
}

func newStampAddCommand(ctx *commandContext) *cobra.Command {
	var flags stampFlags

	cmd := &cobra.Command{
		Use:   "add <album-id> <catalog-number>",
		Short: "Add a stamp to an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			albumID, err := parseID(args[0], "album")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				album, err := store.GetAlbum(cmd.Context(), albumID)
				if err != nil {
					return err
				}
				if album == nil {
					return fmt.Errorf("album %d not found", albumID)
				}

				cfg, _ := ctx.ensureConfig()
				if flags.system == "" {
					flags.system = cfg.Defaults.CatalogSystem
				}
				if flags.status == "" {
					flags.status = cfg.Defaults.StampStatus
				}
				if flags.condition == "" {
					flags.condition = cfg.Defaults.StampCondition
				}
				status, ok := library.ParseStatus(flags.status)
				if !ok {
					return fmt.Errorf("unknown status %q", flags.status)
				}

				stamp, err := store.CreateStamp(cmd.Context(), &library.Stamp{
					AlbumID:       albumID,
					CatalogNumber: args[1],
					CatalogSystem: flags.system,
					Country:       flags.country,
					Year:          flags.year,
					Denomination:  flags.denomination,
					Color:         flags.color,
					Condition:     flags.condition,
					Status:        status,
					PriceCents:    flags.priceCents,
					Notes:         flags.notes,
				})
				if err != nil {
					return err
				}
				ctx.log().Info("stamp added", "component", "cli",
					"id", stamp.ID, "album", albumID, "catalog_number", stamp.CatalogNumber)
				fmt.Fprintf(cmd.OutOrStdout(), "Added stamp %d: %s (%s)\n", stamp.ID, stamp.CatalogNumber, stamp.Status)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newStampListCommand(ctx *commandContext) *cobra.Command {
	var albumID int64
	var collectionID int64
	var statusFilters []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stamps in catalog order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (albumID == 0) == (collectionID == 0) {
				return fmt.Errorf("specify exactly one of --album or --collection")
			}
			statuses, err := parseStatuses(statusFilters)
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				var stamps []*library.Stamp
				if albumID != 0 {
					stamps, err = store.ListStampsByAlbum(cmd.Context(), albumID, statuses...)
				} else {
					stamps, err = store.ListStampsByCollection(cmd.Context(), collectionID, statuses...)
				}
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, stamps)
				}
				if len(stamps) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No stamps")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderStampTable(stamps))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&albumID, "album", 0, "List one album")
	cmd.Flags().Int64Var(&collectionID, "collection", 0, "List a whole collection")
	cmd.Flags().StringSliceVarP(&statusFilters, "status", "s", nil, "Filter by status (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newStampShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stamp record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "stamp")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				stamp, err := store.GetStamp(cmd.Context(), id)
				if err != nil {
					return err
				}
				if stamp == nil {
					return fmt.Errorf("stamp %d not found", id)
				}
				if asJSON {
					return writeJSON(cmd, stamp)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Stamp %d: %s\n", stamp.ID, stamp.CatalogNumber)
				fmt.Fprintf(out, "Album: %d\n", stamp.AlbumID)
				fmt.Fprintf(out, "Status: %s\n", stamp.Status)
				if stamp.CatalogSystem != "" {
					fmt.Fprintf(out, "Catalog system: %s\n", stamp.CatalogSystem)
				}
				if stamp.Country != "" {
					fmt.Fprintf(out, "Country: %s\n", stamp.Country)
				}
				if stamp.Year != 0 {
					fmt.Fprintf(out, "Year: %d\n", stamp.Year)
				}
				if stamp.Denomination != "" {
					fmt.Fprintf(out, "Denomination: %s\n", stamp.Denomination)
				}
				if stamp.Color != "" {
					fmt.Fprintf(out, "Color: %s\n", stamp.Color)
				}
				if stamp.Condition != "" {
					fmt.Fprintf(out, "Condition: %s\n", stamp.Condition)
				}
				if stamp.PriceCents != 0 {
					fmt.Fprintf(out, "Price: %s\n", formatPriceCents(stamp.PriceCents))
				}
				if stamp.Notes != "" {
					fmt.Fprintf(out, "Notes: %s\n", stamp.Notes)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newStampUpdateCommand(ctx *commandContext) *cobra.Command {
	var flags stampFlags
	var catalogNumber string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a stamp record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "stamp")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				stamp, err := store.GetStamp(cmd.Context(), id)
				if err != nil {
					return err
				}
				if stamp == nil {
					return fmt.Errorf("stamp %d not found", id)
				}

				changed := cmd.Flags().Changed
				if changed("number") {
					stamp.CatalogNumber = catalogNumber
				}
				if changed("system") {
					stamp.CatalogSystem = flags.system
				}
				if changed("country") {
					stamp.Country = flags.country
				}
				if changed("year") {
					stamp.Year = flags.year
				}
				if changed("denomination") {
					stamp.Denomination = flags.denomination
				}
				if changed("color") {
					stamp.Color = flags.color
				}
				if changed("condition") {
					stamp.Condition = flags.condition
				}
				if changed("status") {
					status, ok := library.ParseStatus(flags.status)
					if !ok {
						return fmt.Errorf("unknown status %q", flags.status)
					}
					stamp.Status = status
				}
				if changed("price-cents") {
					stamp.PriceCents = flags.priceCents
				}
				if changed("notes") {
					stamp.Notes = flags.notes
				}

				if err := store.UpdateStamp(cmd.Context(), stamp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated stamp %d\n", id)
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&catalogNumber, "number", "", "Replace the catalog number")
	return cmd
}

func newStampStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <owned|wanted|sold>",
		Short: "Change a stamp's ownership status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "stamp")
			if err != nil {
				return err
			}
			status, ok := library.ParseStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown status %q", args[1])
			}
			return ctx.withStore(func(store *library.Store) error {
				updated, err := store.SetStampStatus(cmd.Context(), id, status)
				if err != nil {
					return err
				}
				if !updated {
					return fmt.Errorf("stamp %d not found", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stamp %d is now %s\n", id, status)
				return nil
			})
		},
	}
}

func newStampDeleteCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stamp record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "stamp")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				stamp, err := store.GetStamp(cmd.Context(), id)
				if err != nil {
					return err
				}
				if stamp == nil {
					return fmt.Errorf("stamp %d not found", id)
				}
				ok, err := confirm(cmd, assumeYes,
					fmt.Sprintf("Delete stamp %q?", stamp.CatalogNumber))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
				deleted, err := store.DeleteStamp(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("stamp %d not found", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted stamp %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func parseStatuses(values []string) ([]library.Status, error) {
	var statuses []library.Status
	for _, value := range values {
		status, ok := library.ParseStatus(value)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", value)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func renderStampTable(stamps []*library.Stamp) string {
	rows := make([][]string, 0, len(stamps))
	for _, s := range stamps {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.CatalogNumber,
			string(s.Status),
			orDash(s.Country),
			yearOrDash(s.Year),
			orDash(s.Denomination),
			orDash(s.Condition),
			orDash(s.Notes),
		})
	}
	return renderTable(
		[]string{"ID", "Number", "Status", "Country", "Year", "Denom", "Cond", "Notes"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
	)
}

func yearOrDash(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}
