package library_test

import (
	"context"
	"testing"

	"perfin/internal/library"
	"perfin/internal/testsupport"
)

func TestCreateStampParsesCatalogNumber(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	stamp := testsupport.SeedStamp(t, store, album.ID, "c5a", library.StatusOwned)

	if stamp.Prefix != "C" || stamp.Value != 5 || stamp.Suffix != "a" {
		t.Fatalf("parsed columns wrong: %#v", stamp)
	}
	if stamp.CatalogNumber != "c5a" {
		t.Fatalf("raw catalog number should be preserved, got %q", stamp.CatalogNumber)
	}
}

func TestCreateStampValidation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")

	if _, err := store.CreateStamp(ctx, &library.Stamp{AlbumID: album.ID, CatalogNumber: " ", Status: library.StatusOwned}); err == nil {
		t.Fatal("expected blank catalog number to fail")
	}
	if _, err := store.CreateStamp(ctx, &library.Stamp{AlbumID: album.ID, CatalogNumber: "1", Status: "misplaced"}); err == nil {
		t.Fatal("expected unknown status to fail")
	}
	if _, err := store.CreateStamp(ctx, &library.Stamp{CatalogNumber: "1", Status: library.StatusOwned}); err == nil {
		t.Fatal("expected missing album to fail")
	}
}

func TestListStampsNaturalOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Mixed")
	for _, number := range []string{"10", "C1", "2", "O1", "1", "2a"} {
		testsupport.SeedStamp(t, store, album.ID, number, library.StatusOwned)
	}

	stamps, err := store.ListStampsByAlbum(ctx, album.ID)
	if err != nil {
		t.Fatalf("ListStampsByAlbum failed: %v", err)
	}
	var got []string
	for _, stamp := range stamps {
		got = append(got, stamp.CatalogNumber)
	}
	want := []string{"1", "2", "2a", "10", "C1", "O1"}
	if len(got) != len(want) {
		t.Fatalf("unexpected count: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("natural order broken: got %v, want %v", got, want)
		}
	}
}

func TestListStampsByStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	testsupport.SeedStamp(t, store, album.ID, "C1", library.StatusOwned)
	testsupport.SeedStamp(t, store, album.ID, "C2", library.StatusWanted)
	testsupport.SeedStamp(t, store, album.ID, "C3", library.StatusOwned)

	wanted, err := store.ListStampsByCollection(ctx, collection.ID, library.StatusWanted)
	if err != nil {
		t.Fatalf("ListStampsByCollection failed: %v", err)
	}
	if len(wanted) != 1 || wanted[0].CatalogNumber != "C2" {
		t.Fatalf("unexpected wanted list: %#v", wanted)
	}
}

func TestUpdateStampReparses(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	stamp := testsupport.SeedStamp(t, store, album.ID, "C5", library.StatusOwned)

	stamp.CatalogNumber = "300D"
	stamp.Color = "carmine"
	if err := store.UpdateStamp(ctx, stamp); err != nil {
		t.Fatalf("UpdateStamp failed: %v", err)
	}

	updated, err := store.GetStamp(ctx, stamp.ID)
	if err != nil {
		t.Fatalf("GetStamp failed: %v", err)
	}
	if updated.Prefix != "" || updated.Value != 300 || updated.Suffix != "d" {
		t.Fatalf("parsed columns not refreshed: %#v", updated)
	}
	if updated.Color != "carmine" {
		t.Fatalf("color not persisted: %#v", updated)
	}
}

func TestSetStampStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	stamp := testsupport.SeedStamp(t, store, album.ID, "C5", library.StatusWanted)

	changed, err := store.SetStampStatus(ctx, stamp.ID, library.StatusOwned)
	if err != nil {
		t.Fatalf("SetStampStatus failed: %v", err)
	}
	if !changed {
		t.Fatal("expected status change to affect a row")
	}
	if _, err := store.SetStampStatus(ctx, stamp.ID, "misplaced"); err == nil {
		t.Fatal("expected unknown status to fail")
	}
	changed, err = store.SetStampStatus(ctx, 9999, library.StatusOwned)
	if err != nil {
		t.Fatalf("SetStampStatus failed: %v", err)
	}
	if changed {
		t.Fatal("expected missing stamp to affect no rows")
	}
}

func TestDeleteStamp(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	stamp := testsupport.SeedStamp(t, store, album.ID, "C5", library.StatusOwned)

	removed, err := store.DeleteStamp(ctx, stamp.ID)
	if err != nil {
		t.Fatalf("DeleteStamp failed: %v", err)
	}
	if !removed {
		t.Fatal("expected stamp removal")
	}
	gone, err := store.GetStamp(ctx, stamp.ID)
	if err != nil {
		t.Fatalf("GetStamp failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil after delete, got %#v", gone)
	}
}
