package testsupport

import (
	"context"
	"testing"

	"perfin/internal/config"
	"perfin/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedCollection creates a collection for tests.
func SeedCollection(t testing.TB, store *library.Store, name string) *library.Collection {
	t.Helper()

	collection, err := store.CreateCollection(context.Background(), name, "", "scott")
	if err != nil {
		t.Fatalf("store.CreateCollection: %v", err)
	}
	return collection
}

// SeedAlbum creates an album under a collection for tests.
func SeedAlbum(t testing.TB, store *library.Store, collectionID int64, name string) *library.Album {
	t.Helper()

	album, err := store.CreateAlbum(context.Background(), &library.Album{
		CollectionID: collectionID,
		Name:         name,
	})
	if err != nil {
		t.Fatalf("store.CreateAlbum: %v", err)
	}
	return album
}

// SeedStamp creates a stamp with the given catalog number and status.
func SeedStamp(t testing.TB, store *library.Store, albumID int64, number string, status library.Status) *library.Stamp {
	t.Helper()

	stamp, err := store.CreateStamp(context.Background(), &library.Stamp{
		AlbumID:       albumID,
		CatalogNumber: number,
		CatalogSystem: "scott",
		Status:        status,
	})
	if err != nil {
		t.Fatalf("store.CreateStamp: %v", err)
	}
	return stamp
}
