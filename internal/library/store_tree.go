package library

import (
	"context"
	"database/sql"
	"fmt"
)

// AlbumTree is an album with its stamps, used by backup snapshots.
type AlbumTree struct {
	Album  Album   `json:"album"`
	Stamps []Stamp `json:"stamps"`
}

// CollectionTree is a collection with its albums, used by backup snapshots.
type CollectionTree struct {
	Collection Collection  `json:"collection"`
	Albums     []AlbumTree `json:"albums"`
}

// ExportTree reads the full Collection → Album → Stamp hierarchy.
func (s *Store) ExportTree(ctx context.Context) ([]CollectionTree, error) {
	collections, err := s.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	tree := make([]CollectionTree, 0, len(collections))
	for _, collection := range collections {
		node := CollectionTree{Collection: *collection}
		albums, err := s.ListAlbums(ctx, collection.ID)
		if err != nil {
			return nil, err
		}
		for _, album := range albums {
			albumNode := AlbumTree{Album: *album}
			stamps, err := s.ListStampsByAlbum(ctx, album.ID)
			if err != nil {
				return nil, err
			}
			for _, stamp := range stamps {
				albumNode.Stamps = append(albumNode.Stamps, *stamp)
			}
			node.Albums = append(node.Albums, albumNode)
		}
		tree = append(tree, node)
	}
	return tree, nil
}

// RestoreTree replaces the entire library content with the given hierarchy in
// a single transaction. Identifiers are reassigned; record timestamps are
// preserved from the snapshot.
func (s *Store) RestoreTree(ctx context.Context, tree []CollectionTree) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"stamps", "albums", "collections"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, node := range tree {
			collection := node.Collection
			res, err := tx.ExecContext(
				ctx,
				`INSERT INTO collections (name, description, catalog_system, created_at, updated_at)
                 VALUES (?, ?, ?, ?, ?)`,
				collection.Name,
				nullableString(collection.Description),
				collection.CatalogSystem,
				timestamp(collection.CreatedAt),
				timestamp(collection.UpdatedAt),
			)
			if err != nil {
				return fmt.Errorf("restore collection %q: %w", collection.Name, err)
			}
			collectionID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("last insert id: %w", err)
			}

			for _, albumNode := range node.Albums {
				album := albumNode.Album
				res, err := tx.ExecContext(
					ctx,
					`INSERT INTO albums (collection_id, name, country, year_start, year_end, description, created_at, updated_at)
                     VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
					collectionID,
					album.Name,
					nullableString(album.Country),
					album.YearStart,
					album.YearEnd,
					nullableString(album.Description),
					timestamp(album.CreatedAt),
					timestamp(album.UpdatedAt),
				)
				if err != nil {
					return fmt.Errorf("restore album %q: %w", album.Name, err)
				}
				albumID, err := res.LastInsertId()
				if err != nil {
					return fmt.Errorf("last insert id: %w", err)
				}

				for _, stamp := range albumNode.Stamps {
					if _, err := tx.ExecContext(
						ctx,
						`INSERT INTO stamps (
                            album_id, catalog_number, catalog_prefix, catalog_value, catalog_suffix,
                            catalog_system, country, year, denomination, color, condition, status,
                            price_cents, notes, created_at, updated_at
                        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
						albumID,
						stamp.CatalogNumber,
						stamp.Prefix,
						stamp.Value,
						stamp.Suffix,
						stamp.CatalogSystem,
						nullableString(stamp.Country),
						stamp.Year,
						nullableString(stamp.Denomination),
						nullableString(stamp.Color),
						nullableString(stamp.Condition),
						stamp.Status,
						stamp.PriceCents,
						nullableString(stamp.Notes),
						timestamp(stamp.CreatedAt),
						timestamp(stamp.UpdatedAt),
					); err != nil {
						return fmt.Errorf("restore stamp %q: %w", stamp.CatalogNumber, err)
					}
				}
			}
		}
		return nil
	})
}
