package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"perfin/internal/config"
	"perfin/internal/csvio"
	"perfin/internal/library"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var albumID int64

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import stamps from a CSV file into an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if albumID == 0 {
				return fmt.Errorf("--album is required")
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer file.Close()

			return ctx.withStore(func(store *library.Store) error {
				album, err := store.GetAlbum(cmd.Context(), albumID)
				if err != nil {
					return err
				}
				if album == nil {
					return fmt.Errorf("album %d not found", albumID)
				}

				cfg, _ := ctx.ensureConfig()
				result, err := csvio.Import(cmd.Context(), store, albumID, file, cfg.Defaults)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d stamps into %s", result.Imported, album.Name)
				if result.Skipped > 0 {
					fmt.Fprintf(out, " (%d rows skipped)", result.Skipped)
				}
				fmt.Fprintln(out)
				for _, rowErr := range result.Errors {
					fmt.Fprintf(out, "  line %d: %s\n", rowErr.Line, rowErr.Reason)
				}
				ctx.log().Info("csv import finished", "component", "cli",
					"album", albumID, "imported", result.Imported, "skipped", result.Skipped)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&albumID, "album", 0, "Destination album id")
	return cmd
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var albumID int64
	var collectionID int64
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stamps to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (albumID == 0) == (collectionID == 0) {
				return fmt.Errorf("specify exactly one of --album or --collection")
			}
			return ctx.withStore(func(store *library.Store) error {
				var stamps []*library.Stamp
				var err error
				if albumID != 0 {
					stamps, err = store.ListStampsByAlbum(cmd.Context(), albumID)
				} else {
					stamps, err = store.ListStampsByCollection(cmd.Context(), collectionID)
				}
				if err != nil {
					return err
				}

				target := output
				if target == "" {
					cfg, _ := ctx.ensureConfig()
					name := fmt.Sprintf("perfin-export-%s.csv", time.Now().UTC().Format("20060102-150405"))
					target = filepath.Join(cfg.Paths.ExportDir, name)
				} else {
					expanded, err := config.ExpandPath(target)
					if err != nil {
						return err
					}
					target = expanded
				}
				if dir := filepath.Dir(target); dir != "" {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("create export directory: %w", err)
					}
				}

				file, err := os.Create(target)
				if err != nil {
					return fmt.Errorf("create csv: %w", err)
				}
				defer file.Close()

				if err := csvio.Export(file, stamps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d stamps to %s\n", len(stamps), target)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&albumID, "album", 0, "Export one album")
	cmd.Flags().Int64Var(&collectionID, "collection", 0, "Export a whole collection")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (defaults into export_dir)")
	return cmd
}
