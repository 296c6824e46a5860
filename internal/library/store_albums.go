package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CreateAlbum inserts a new album under a collection.
func (s *Store) CreateAlbum(ctx context.Context, album *Album) (*Album, error) {
	if album == nil {
		return nil, errors.New("album is nil")
	}
	name := strings.TrimSpace(album.Name)
	if name == "" {
		return nil, errors.New("album name is required")
	}
	if album.CollectionID == 0 {
		return nil, errors.New("album requires a collection")
	}
	if album.YearEnd != 0 && album.YearEnd < album.YearStart {
		return nil, fmt.Errorf("album year range %d-%d is inverted", album.YearStart, album.YearEnd)
	}
	now := timestamp(time.Now())

	res, err := s.exec(
		ctx,
		`INSERT INTO albums (collection_id, name, country, year_start, year_end, description, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		album.CollectionID,
		name,
		nullableString(album.Country),
		album.YearStart,
		album.YearEnd,
		nullableString(album.Description),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert album: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetAlbum(ctx, id)
}

// GetAlbum fetches an album by identifier. Missing rows return nil.
func (s *Store) GetAlbum(ctx context.Context, id int64) (*Album, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+albumColumns+` FROM albums WHERE id = ?`, id)
	album, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	return album, nil
}

// FindAlbumByName returns the named album within a collection, or nil.
func (s *Store) FindAlbumByName(ctx context.Context, collectionID int64, name string) (*Album, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+albumColumns+` FROM albums WHERE collection_id = ? AND name = ?`,
		collectionID,
		strings.TrimSpace(name),
	)
	album, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find album: %w", err)
	}
	return album, nil
}

// ListAlbums returns a collection's albums ordered by name.
func (s *Store) ListAlbums(ctx context.Context, collectionID int64) ([]*Album, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+albumColumns+` FROM albums WHERE collection_id = ? ORDER BY name`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, rows.Err()
}

// DeleteAlbum removes an album and its stamps in one transaction.
func (s *Store) DeleteAlbum(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin delete tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `DELETE FROM stamps WHERE album_id = ?`, id); err != nil {
			return fmt.Errorf("delete stamps: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete album: %w", err)
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

const albumColumns = "id, collection_id, name, country, year_start, year_end, description, created_at, updated_at"

func scanAlbum(scanner interface{ Scan(dest ...any) error }) (*Album, error) {
	var (
		id           int64
		collectionID int64
		name         string
		country      sql.NullString
		yearStart    sql.NullInt64
		yearEnd      sql.NullInt64
		description  sql.NullString
		createdRaw   sql.NullString
		updatedRaw   sql.NullString
	)
	if err := scanner.Scan(&id, &collectionID, &name, &country, &yearStart, &yearEnd, &description, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	album := &Album{
		ID:           id,
		CollectionID: collectionID,
		Name:         name,
		Country:      country.String,
		YearStart:    int(yearStart.Int64),
		YearEnd:      int(yearEnd.Int64),
		Description:  description.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		album.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		album.UpdatedAt = updated
	}
	return album, nil
}
