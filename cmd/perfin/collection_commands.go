package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"perfin/internal/library"
)

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections",
	}

	collectionCmd.AddCommand(newCollectionCreateCommand(ctx))
	collectionCmd.AddCommand(newCollectionListCommand(ctx))
	collectionCmd.AddCommand(newCollectionShowCommand(ctx))
	collectionCmd.AddCommand(newCollectionRenameCommand(ctx))
	collectionCmd.AddCommand(newCollectionDeleteCommand(ctx))

	return collectionCmd
}

func newCollectionCreateCommand(ctx *commandContext) *cobra.Command {
	var description string
	var catalogSystem string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				system := catalogSystem
				if system == "" {
					cfg, _ := ctx.ensureConfig()
					system = cfg.Defaults.CatalogSystem
				}
				collection, err := store.CreateCollection(cmd.Context(), args[0], description, system)
				if err != nil {
					return err
				}
				ctx.log().Info("collection created", "component", "cli", "id", collection.ID, "name", collection.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "Created collection %d: %s\n", collection.ID, collection.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Collection description")
	cmd.Flags().StringVar(&catalogSystem, "system", "", "Catalog system (defaults from config)")
	return cmd
}

func newCollectionListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				collections, err := store.ListCollections(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, collections)
				}
				if len(collections) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No collections")
					return nil
				}
				rows := make([][]string, 0, len(collections))
				for _, c := range collections {
					rows = append(rows, []string{
						strconv.FormatInt(c.ID, 10),
						c.Name,
						orDash(c.CatalogSystem),
						orDash(c.Description),
						formatTime(c.CreatedAt),
					})
				}
				table := renderTable(
					[]string{"ID", "Name", "System", "Description", "Created"},
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

func newCollectionShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a collection and its albums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "collection")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				collection, err := store.GetCollection(cmd.Context(), id)
				if err != nil {
					return err
				}
				if collection == nil {
					return fmt.Errorf("collection %d not found", id)
				}
				albums, err := store.ListAlbums(cmd.Context(), id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, struct {
						Collection *library.Collection `json:"collection"`
						Albums     []*library.Album    `json:"albums"`
					}{collection, albums})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Collection %d: %s\n", collection.ID, collection.Name)
				if collection.CatalogSystem != "" {
					fmt.Fprintf(out, "Catalog system: %s\n", collection.CatalogSystem)
				}
				if collection.Description != "" {
					fmt.Fprintf(out, "Description: %s\n", collection.Description)
				}
				if len(albums) == 0 {
					fmt.Fprintln(out, "No albums")
					return nil
				}
				rows := make([][]string, 0, len(albums))
				for _, a := range albums {
					rows = append(rows, []string{
						strconv.FormatInt(a.ID, 10),
						a.Name,
						orDash(a.Country),
						orDash(formatYearRange(a.YearStart, a.YearEnd)),
					})
				}
				table := renderTable(
					[]string{"ID", "Album", "Country", "Years"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCollectionRenameCommand(ctx *commandContext) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "collection")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				if !cmd.Flags().Changed("description") {
					current, err := store.GetCollection(cmd.Context(), id)
					if err != nil {
						return err
					}
					if current == nil {
						return fmt.Errorf("collection %d not found", id)
					}
					description = current.Description
				}
				if err := store.RenameCollection(cmd.Context(), id, args[1], description); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed collection %d to %s\n", id, args[1])
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Replace the description")
	return cmd
}

func newCollectionDeleteCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a collection and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "collection")
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *library.Store) error {
				collection, err := store.GetCollection(cmd.Context(), id)
				if err != nil {
					return err
				}
				if collection == nil {
					return fmt.Errorf("collection %d not found", id)
				}
				ok, err := confirm(cmd, assumeYes,
					fmt.Sprintf("Delete collection %q with all its albums and stamps?", collection.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
				deleted, err := store.DeleteCollection(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("collection %d not found", id)
				}
				ctx.log().Info("collection deleted", "component", "cli", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted collection %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
