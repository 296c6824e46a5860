package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"perfin/internal/backup"
	"perfin/internal/config"
	"perfin/internal/library"
)

func newBackupCommand(ctx *commandContext) *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot and restore the whole library",
	}

	backupCmd.AddCommand(newBackupCreateCommand(ctx))
	backupCmd.AddCommand(newBackupRestoreCommand(ctx))
	backupCmd.AddCommand(newBackupInspectCommand())

	return backupCmd
}

func newBackupCreateCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a snapshot of every collection to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *library.Store) error {
				cfg, _ := ctx.ensureConfig()
				target := output
				if target == "" {
					target = backup.DefaultPath(cfg, time.Now())
				} else {
					expanded, err := config.ExpandPath(target)
					if err != nil {
						return err
					}
					target = expanded
				}
				snapshot, err := backup.Create(cmd.Context(), cfg, store, target)
				if err != nil {
					return err
				}
				ctx.log().Info("backup written", "component", "cli",
					"snapshot", snapshot.SnapshotID, "path", target)
				fmt.Fprintf(cmd.OutOrStdout(), "Backup %s written to %s (%d collections)\n",
					snapshot.SnapshotID, target, len(snapshot.Collections))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (defaults into backup_dir)")
	return cmd
}

func newBackupRestoreCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "restore <snapshot-file>",
		Short: "Replace the library with a snapshot's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			snapshot, err := backup.Read(path)
			if err != nil {
				return err
			}

			ok, err := confirm(cmd, assumeYes, fmt.Sprintf(
				"Replace the entire library with snapshot %s from %s?",
				snapshot.SnapshotID, snapshot.CreatedAt.Local().Format("2006-01-02 15:04")))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			return ctx.withStore(func(store *library.Store) error {
				cfg, _ := ctx.ensureConfig()
				restored, err := backup.Restore(cmd.Context(), cfg, store, path)
				if err != nil {
					return err
				}
				ctx.log().Info("backup restored", "component", "cli", "snapshot", restored.SnapshotID)
				fmt.Fprintf(cmd.OutOrStdout(), "Restored snapshot %s (%d collections)\n",
					restored.SnapshotID, len(restored.Collections))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newBackupInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect <snapshot-file>",
		Short:       "Show snapshot metadata without restoring it",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			snapshot, err := backup.Read(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Snapshot: %s\n", snapshot.SnapshotID)
			fmt.Fprintf(out, "Created: %s\n", snapshot.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Schema: %s\n", snapshot.SchemaVersion)
			total := 0
			for _, collection := range snapshot.Collections {
				for _, album := range collection.Albums {
					total += len(album.Stamps)
				}
			}
			fmt.Fprintf(out, "Collections: %d, stamps: %d\n", len(snapshot.Collections), total)
			return nil
		},
	}
}
