package library_test

import (
	"context"
	"testing"

	"perfin/internal/library"
	"perfin/internal/testsupport"
)

func TestOpenAppliesMigrations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	version, err := store.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version == "" {
		t.Fatal("expected at least one applied migration")
	}

	health, err := store.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if !health.DatabaseReadable || !health.IntegrityCheck {
		t.Fatalf("unexpected health: %+v", health)
	}
	if len(health.MissingTables) != 0 {
		t.Fatalf("missing tables: %v", health.MissingTables)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	collection := testsupport.SeedCollection(t, store, "Classics")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	fetched, err := reopened.GetCollection(context.Background(), collection.ID)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if fetched == nil || fetched.Name != "Classics" {
		t.Fatalf("expected collection to survive reopen, got %#v", fetched)
	}
}

func TestCollectionCRUD(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection, err := store.CreateCollection(ctx, "US Airmail", "first flights", "scott")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	if collection.ID == 0 || collection.CatalogSystem != "scott" {
		t.Fatalf("unexpected collection: %#v", collection)
	}

	if _, err := store.CreateCollection(ctx, "US Airmail", "", "scott"); err == nil {
		t.Fatal("expected duplicate name to fail")
	}
	if _, err := store.CreateCollection(ctx, "   ", "", "scott"); err == nil {
		t.Fatal("expected blank name to fail")
	}

	found, err := store.FindCollectionByName(ctx, "US Airmail")
	if err != nil {
		t.Fatalf("FindCollectionByName failed: %v", err)
	}
	if found == nil || found.ID != collection.ID {
		t.Fatalf("expected to find collection, got %#v", found)
	}

	if err := store.RenameCollection(ctx, collection.ID, "US Air Mail", "renamed"); err != nil {
		t.Fatalf("RenameCollection failed: %v", err)
	}
	renamed, err := store.GetCollection(ctx, collection.ID)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if renamed.Name != "US Air Mail" || renamed.Description != "renamed" {
		t.Fatalf("rename not persisted: %#v", renamed)
	}

	missing, err := store.GetCollection(ctx, 9999)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing collection, got %#v", missing)
	}
}

func TestCascadeDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "Germany")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Weimar")
	other := testsupport.SeedAlbum(t, store, collection.ID, "Reich")
	testsupport.SeedStamp(t, store, album.ID, "1", library.StatusOwned)
	testsupport.SeedStamp(t, store, album.ID, "2", library.StatusOwned)
	testsupport.SeedStamp(t, store, other.ID, "C5", library.StatusWanted)

	keep := testsupport.SeedCollection(t, store, "France")
	keepAlbum := testsupport.SeedAlbum(t, store, keep.ID, "Ceres")
	kept := testsupport.SeedStamp(t, store, keepAlbum.ID, "3", library.StatusOwned)

	removed, err := store.DeleteCollection(ctx, collection.ID)
	if err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}
	if !removed {
		t.Fatal("expected collection to be removed")
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("expected only the unrelated stamp to survive, stats: %+v", stats)
	}
	survivor, err := store.GetStamp(ctx, kept.ID)
	if err != nil {
		t.Fatalf("GetStamp failed: %v", err)
	}
	if survivor == nil {
		t.Fatal("unrelated stamp should not be cascade-deleted")
	}

	albums, err := store.ListAlbums(ctx, collection.ID)
	if err != nil {
		t.Fatalf("ListAlbums failed: %v", err)
	}
	if len(albums) != 0 {
		t.Fatalf("expected no albums to remain, got %d", len(albums))
	}
}

func TestDeleteAlbumCascadesStamps(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "Sweden")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Definitives")
	testsupport.SeedStamp(t, store, album.ID, "10", library.StatusOwned)

	removed, err := store.DeleteAlbum(ctx, album.ID)
	if err != nil {
		t.Fatalf("DeleteAlbum failed: %v", err)
	}
	if !removed {
		t.Fatal("expected album to be removed")
	}
	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 0 {
		t.Fatalf("expected stamps to cascade, stats: %+v", stats)
	}
}
