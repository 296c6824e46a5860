package library_test

import (
	"context"
	"testing"

	"perfin/internal/library"
	"perfin/internal/testsupport"
)

func TestSavedFilterCRUD(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	filter, err := store.CreateSavedFilter(ctx, &library.SavedFilter{
		Name:   "wishlist",
		Status: library.StatusWanted,
	})
	if err != nil {
		t.Fatalf("CreateSavedFilter failed: %v", err)
	}
	if filter.ID == 0 {
		t.Fatal("expected filter ID to be assigned")
	}

	if _, err := store.CreateSavedFilter(ctx, &library.SavedFilter{Name: "wishlist"}); err == nil {
		t.Fatal("expected duplicate name to fail")
	}
	if _, err := store.CreateSavedFilter(ctx, &library.SavedFilter{Name: "bad", Status: "misplaced"}); err == nil {
		t.Fatal("expected unknown status to fail")
	}

	found, err := store.FindSavedFilterByName(ctx, "wishlist")
	if err != nil {
		t.Fatalf("FindSavedFilterByName failed: %v", err)
	}
	if found == nil || found.ID != filter.ID {
		t.Fatalf("expected to find filter, got %#v", found)
	}

	filters, err := store.ListSavedFilters(ctx)
	if err != nil {
		t.Fatalf("ListSavedFilters failed: %v", err)
	}
	if len(filters) != 2 {
		t.Fatalf("unexpected filter count: %d", len(filters))
	}

	removed, err := store.DeleteSavedFilter(ctx, filter.ID)
	if err != nil {
		t.Fatalf("DeleteSavedFilter failed: %v", err)
	}
	if !removed {
		t.Fatal("expected filter removal")
	}
}

func TestRunSavedFilter(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "US")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Airmail")
	testsupport.SeedStamp(t, store, album.ID, "1", library.StatusOwned)
	testsupport.SeedStamp(t, store, album.ID, "25", library.StatusOwned)
	testsupport.SeedStamp(t, store, album.ID, "75", library.StatusOwned)
	testsupport.SeedStamp(t, store, album.ID, "30", library.StatusWanted)
	testsupport.SeedStamp(t, store, album.ID, "C10", library.StatusOwned)

	owned := library.StatusOwned
	stamps, err := store.RunSavedFilter(ctx, &library.SavedFilter{
		Status:     owned,
		LowerBound: "1",
		UpperBound: "50",
	})
	if err != nil {
		t.Fatalf("RunSavedFilter failed: %v", err)
	}

	var got []string
	for _, stamp := range stamps {
		got = append(got, stamp.CatalogNumber)
	}
	// The unprefixed range keeps 1 and 25, drops 75, skips the wanted 30,
	// and keeps C10: a differently-prefixed series is never constrained by
	// the bound.
	want := []string{"1", "25", "C10"}
	if len(got) != len(want) {
		t.Fatalf("unexpected result %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected result %v, want %v", got, want)
		}
	}
}

func TestRunSavedFilterYearAndCountry(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	collection := testsupport.SeedCollection(t, store, "World")
	album := testsupport.SeedAlbum(t, store, collection.ID, "Mixed")
	mk := func(number, country string, year int) {
		if _, err := store.CreateStamp(ctx, &library.Stamp{
			AlbumID:       album.ID,
			CatalogNumber: number,
			CatalogSystem: "scott",
			Country:       country,
			Year:          year,
			Status:        library.StatusOwned,
		}); err != nil {
			t.Fatalf("CreateStamp failed: %v", err)
		}
	}
	mk("1", "Sweden", 1920)
	mk("2", "Sweden", 1960)
	mk("3", "Norway", 1920)

	stamps, err := store.RunSavedFilter(ctx, &library.SavedFilter{
		Country:   "sweden",
		YearStart: 1900,
		YearEnd:   1950,
	})
	if err != nil {
		t.Fatalf("RunSavedFilter failed: %v", err)
	}
	if len(stamps) != 1 || stamps[0].CatalogNumber != "1" {
		t.Fatalf("unexpected result: %#v", stamps)
	}
}
