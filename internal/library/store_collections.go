package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	return res, err
}

// CreateCollection inserts a new collection. Name must be unique.
func (s *Store) CreateCollection(ctx context.Context, name, description, catalogSystem string) (*Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("collection name is required")
	}
	now := timestamp(time.Now())

	res, err := s.exec(
		ctx,
		`INSERT INTO collections (name, description, catalog_system, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)`,
		name,
		nullableString(description),
		strings.ToLower(strings.TrimSpace(catalogSystem)),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert collection: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetCollection(ctx, id)
}

// GetCollection fetches a collection by identifier. Missing rows return nil.
func (s *Store) GetCollection(ctx context.Context, id int64) (*Collection, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+collectionColumns+` FROM collections WHERE id = ?`, id)
	collection, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return collection, nil
}

// FindCollectionByName returns the collection with the given name, or nil.
func (s *Store) FindCollectionByName(ctx context.Context, name string) (*Collection, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+collectionColumns+` FROM collections WHERE name = ?`, strings.TrimSpace(name))
	collection, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find collection: %w", err)
	}
	return collection, nil
}

// ListCollections returns all collections ordered by name.
func (s *Store) ListCollections(ctx context.Context) ([]*Collection, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+collectionColumns+` FROM collections ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var collections []*Collection
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, rows.Err()
}

// RenameCollection updates a collection's name and description.
func (s *Store) RenameCollection(ctx context.Context, id int64, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("collection name is required")
	}
	_, err := s.exec(
		ctx,
		`UPDATE collections SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name,
		nullableString(description),
		timestamp(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("rename collection: %w", err)
	}
	return nil
}

// DeleteCollection removes a collection together with its albums and stamps.
// The cascade is explicit and transactional: stamps first, then albums, then
// the collection row itself.
func (s *Store) DeleteCollection(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin delete tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `DELETE FROM stamps WHERE album_id IN (SELECT id FROM albums WHERE collection_id = ?)`, id); err != nil {
			return fmt.Errorf("delete stamps: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE collection_id = ?`, id); err != nil {
			return fmt.Errorf("delete albums: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete collection: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		removed = affected > 0
		return tx.Commit()
	})
	return removed, err
}

const collectionColumns = "id, name, description, catalog_system, created_at, updated_at"

func scanCollection(scanner interface{ Scan(dest ...any) error }) (*Collection, error) {
	var (
		id          int64
		name        string
		description sql.NullString
		system      sql.NullString
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)
	if err := scanner.Scan(&id, &name, &description, &system, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	collection := &Collection{
		ID:            id,
		Name:          name,
		Description:   description.String,
		CatalogSystem: system.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		collection.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		collection.UpdatedAt = updated
	}
	return collection, nil
}
