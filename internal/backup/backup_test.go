package backup_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"perfin/internal/backup"
	"perfin/internal/library"
	"perfin/internal/testsupport"
)

func TestCreateAndRestoreRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	testsupport.SeedStamp(t, store, album.ID, "C1", library.StatusOwned)
	testsupport.SeedStamp(t, store, album.ID, "C3", library.StatusWanted)

	path := filepath.Join(cfg.Paths.BackupDir, "snap.json")
	snapshot, err := backup.Create(ctx, cfg, store, path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if snapshot.SnapshotID == "" || snapshot.SchemaVersion == "" {
		t.Fatalf("snapshot metadata incomplete: %+v", snapshot)
	}
	if len(snapshot.Collections) != 1 || len(snapshot.Collections[0].Albums) != 1 {
		t.Fatalf("unexpected snapshot tree: %+v", snapshot.Collections)
	}

	// Mutate the library, then restore the snapshot over it.
	testsupport.SeedStamp(t, store, album.ID, "C9", library.StatusOwned)
	extra := testsupport.SeedCollection(t, store, "Scratch")
	if _, err := store.DeleteCollection(ctx, extra.ID); err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}

	restored, err := backup.Restore(ctx, cfg, store, path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.SnapshotID != snapshot.SnapshotID {
		t.Fatal("restored a different snapshot")
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 2 || stats.Owned != 1 || stats.Wanted != 1 {
		t.Fatalf("library content not restored: %+v", stats)
	}

	restoredCollection, err := store.FindCollectionByName(ctx, "US")
	if err != nil {
		t.Fatalf("FindCollectionByName failed: %v", err)
	}
	if restoredCollection == nil {
		t.Fatal("collection missing after restore")
	}
	stamps, err := store.ListStampsByCollection(ctx, restoredCollection.ID)
	if err != nil {
		t.Fatalf("ListStampsByCollection failed: %v", err)
	}
	if len(stamps) != 2 || stamps[0].CatalogNumber != "C1" || stamps[1].CatalogNumber != "C3" {
		t.Fatalf("unexpected restored stamps: %#v", stamps)
	}
}

func TestRestoreRejectsNewerSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	path := filepath.Join(cfg.Paths.BackupDir, "snap.json")
	if _, err := backup.Create(ctx, cfg, store, path); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	snapshot, err := backup.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	snapshot.SchemaVersion = "9999_future"
	rewrite(t, path, snapshot)

	if _, err := backup.Restore(ctx, cfg, store, path); err == nil {
		t.Fatal("expected restore of newer-schema snapshot to fail")
	} else if !strings.Contains(err.Error(), "newer") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadRejectsForeignJSON(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	path := filepath.Join(cfg.Paths.BackupDir, "other.json")
	writeFile(t, path, []byte(`{"hello": "world"}`))
	if _, err := backup.Read(path); err == nil {
		t.Fatal("expected error for non-perfin JSON")
	}
}

func TestDefaultPathIsTimestamped(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	path := backup.DefaultPath(cfg, now)
	if filepath.Dir(path) != cfg.Paths.BackupDir {
		t.Fatalf("unexpected directory: %q", path)
	}
	if filepath.Base(path) != "perfin-backup-20260314-150926.json" {
		t.Fatalf("unexpected name: %q", path)
	}
}
