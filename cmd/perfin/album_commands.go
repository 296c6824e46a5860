package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"perfin/internal/library"
)

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	albumCmd := &cobra.Command{
		Use:   "album",
		Short: "Manage albums within a collection",
	}

	albumCmd.AddCommand(newAlbumCreateCommand(ctx))
	albumCmd.AddCommand(newAlbumListCommand(ctx))
	albumCmd.AddCommand(newAlbumShowCommand(ctx))
	albumCmd.AddCommand(newAlbumDeleteCommand(ctx))

	return albumCmd
}

func newAlbumCreateCommand(ctx *commandContext) *cobra.Command {
	var country string
	var yearStart int
	var yearEnd int
	var description string

	cmd := &cobra.Command{
		Use:   "create <collection-id> <name>",
		Short: "Create an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			collectionID, err := parseID(args[0], "collection")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				collection, err := store.GetCollection(cmd.Context(), collectionID)
				if err != nil {
					return err
				}
				if collection == nil {
					return fmt.Errorf("collection %d not found", collectionID)
				}
				album, err := store.CreateAlbum(cmd.Context(), &library.Album{
					CollectionID: collectionID,
					Name:         args[1],
					Country:      country,
					YearStart:    yearStart,
					YearEnd:      yearEnd,
					Description:  description,
				})
				if err != nil {
					return err
				}
				ctx.log().Info("album created", "component", "cli", "id", album.ID, "collection", collectionID)
				fmt.Fprintf(cmd.OutOrStdout(), "Created album %d: %s\n", album.ID, album.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Country the album covers")
	cmd.Flags().IntVar(&yearStart, "year-start", 0, "First year covered")
	cmd.Flags().IntVar(&yearEnd, "year-end", 0, "Last year covered")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Album description")
	return cmd
}

func newAlbumListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <collection-id>",
		Short: "List albums in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collectionID, err := parseID(args[0], "collection")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				albums, err := store.ListAlbums(cmd.Context(), collectionID)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, albums)
				}
				if len(albums) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No albums")
					return nil
				}
				rows := make([][]string, 0, len(albums))
				for _, a := range albums {
					rows = append(rows, []string{
						strconv.FormatInt(a.ID, 10),
						a.Name,
						orDash(a.Country),
						orDash(formatYearRange(a.YearStart, a.YearEnd)),
						formatTime(a.CreatedAt),
					})
				}
				table := renderTable(
					[]string{"ID", "Name", "Country", "Years", "Created"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newAlbumShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an album and its stamps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "album")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				album, err := store.GetAlbum(cmd.Context(), id)
				if err != nil {
					return err
				}
				if album == nil {
					return fmt.Errorf("album %d not found", id)
				}
				stamps, err := store.ListStampsByAlbum(cmd.Context(), id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, struct {
						Album  *library.Album   `json:"album"`
						Stamps []*library.Stamp `json:"stamps"`
					}{album, stamps})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Album %d: %s\n", album.ID, album.Name)
				if album.Country != "" {
					fmt.Fprintf(out, "Country: %s\n", album.Country)
				}
				if years := formatYearRange(album.YearStart, album.YearEnd); years != "" {
					fmt.Fprintf(out, "Years: %s\n", years)
				}
				if len(stamps) == 0 {
					fmt.Fprintln(out, "No stamps")
					return nil
				}
				fmt.Fprintln(out, renderStampTable(stamps))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newAlbumDeleteCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an album and its stamps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "album")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				album, err := store.GetAlbum(cmd.Context(), id)
				if err != nil {
					return err
				}
				if album == nil {
					return fmt.Errorf("album %d not found", id)
				}
				ok, err := confirm(cmd, assumeYes,
					fmt.Sprintf("Delete album %q and all its stamps?", album.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
				deleted, err := store.DeleteAlbum(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("album %d not found", id)
				}
				ctx.log().Info("album deleted", "component", "cli", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted album %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
