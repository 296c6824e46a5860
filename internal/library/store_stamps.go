package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"perfin/internal/catalog"
)

// naturalOrder sorts stamps the way collectors expect: series prefix, then
// numeric value, then variety suffix. The parsed columns make this a plain
// SQL ORDER BY.
const naturalOrder = ` ORDER BY catalog_prefix, catalog_value, catalog_suffix, id`

// CreateStamp inserts a stamp record. The catalog number is parsed and the
// prefix/value/suffix columns populated from it.
func (s *Store) CreateStamp(ctx context.Context, stamp *Stamp) (*Stamp, error) {
	if stamp == nil {
		return nil, errors.New("stamp is nil")
	}
	raw := strings.TrimSpace(stamp.CatalogNumber)
	if raw == "" {
		return nil, errors.New("catalog number is required")
	}
	if stamp.AlbumID == 0 {
		return nil, errors.New("stamp requires an album")
	}
	if _, ok := ParseStatus(string(stamp.Status)); !ok {
		return nil, fmt.Errorf("unknown status %q", stamp.Status)
	}

	parsed := catalog.Parse(raw)
	now := timestamp(time.Now())

	res, err := s.exec(
		ctx,
		`INSERT INTO stamps (
            album_id, catalog_number, catalog_prefix, catalog_value, catalog_suffix,
            catalog_system, country, year, denomination, color, condition, status,
            price_cents, notes, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stamp.AlbumID,
		raw,
		parsed.Prefix,
		parsed.Value,
		parsed.Suffix,
		strings.ToLower(strings.TrimSpace(stamp.CatalogSystem)),
		nullableString(stamp.Country),
		stamp.Year,
		nullableString(stamp.Denomination),
		nullableString(stamp.Color),
		nullableString(stamp.Condition),
		stamp.Status,
		stamp.PriceCents,
		nullableString(stamp.Notes),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert stamp: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetStamp(ctx, id)
}

// GetStamp fetches a stamp by identifier. Missing rows return nil.
func (s *Store) GetStamp(ctx context.Context, id int64) (*Stamp, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+stampColumns+` FROM stamps WHERE id = ?`, id)
	stamp, err := scanStamp(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stamp: %w", err)
	}
	return stamp, nil
}

// UpdateStamp persists changes to an existing stamp. The parsed catalog
// columns are refreshed from CatalogNumber so ordering stays consistent.
func (s *Store) UpdateStamp(ctx context.Context, stamp *Stamp) error {
	if stamp == nil {
		return errors.New("stamp is nil")
	}
	if _, ok := ParseStatus(string(stamp.Status)); !ok {
		return fmt.Errorf("unknown status %q", stamp.Status)
	}
	parsed := catalog.Parse(stamp.CatalogNumber)
	stamp.UpdatedAt = time.Now().UTC()

	_, err := s.exec(
		ctx,
		`UPDATE stamps
         SET catalog_number = ?, catalog_prefix = ?, catalog_value = ?, catalog_suffix = ?,
             catalog_system = ?, country = ?, year = ?, denomination = ?, color = ?,
             condition = ?, status = ?, price_cents = ?, notes = ?, updated_at = ?
         WHERE id = ?`,
		strings.TrimSpace(stamp.CatalogNumber),
		parsed.Prefix,
		parsed.Value,
		parsed.Suffix,
		strings.ToLower(strings.TrimSpace(stamp.CatalogSystem)),
		nullableString(stamp.Country),
		stamp.Year,
		nullableString(stamp.Denomination),
		nullableString(stamp.Color),
		nullableString(stamp.Condition),
		stamp.Status,
		stamp.PriceCents,
		nullableString(stamp.Notes),
		timestamp(stamp.UpdatedAt),
		stamp.ID,
	)
	if err != nil {
		return fmt.Errorf("update stamp: %w", err)
	}
	return nil
}

// SetStampStatus updates just the status of a stamp.
func (s *Store) SetStampStatus(ctx context.Context, id int64, status Status) (bool, error) {
	if _, ok := ParseStatus(string(status)); !ok {
		return false, fmt.Errorf("unknown status %q", status)
	}
	res, err := s.exec(
		ctx,
		`UPDATE stamps SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		timestamp(time.Now()),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("set stamp status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteStamp removes a stamp by identifier.
func (s *Store) DeleteStamp(ctx context.Context, id int64) (bool, error) {
	res, err := s.exec(ctx, `DELETE FROM stamps WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete stamp: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListStampsByAlbum returns an album's stamps in natural catalog order,
// optionally restricted to a status set.
func (s *Store) ListStampsByAlbum(ctx context.Context, albumID int64, statuses ...Status) ([]*Stamp, error) {
	query := `SELECT ` + stampColumns + ` FROM stamps WHERE album_id = ?`
	args := []any{albumID}
	if len(statuses) > 0 {
		query += ` AND status IN (` + makePlaceholders(len(statuses)) + `)`
		for _, status := range statuses {
			args = append(args, status)
		}
	}
	return s.queryStamps(ctx, query+naturalOrder, args...)
}

// ListStampsByCollection returns every stamp in a collection's albums in
// natural catalog order.
func (s *Store) ListStampsByCollection(ctx context.Context, collectionID int64, statuses ...Status) ([]*Stamp, error) {
	query := `SELECT ` + stampColumns + ` FROM stamps
        WHERE album_id IN (SELECT id FROM albums WHERE collection_id = ?)`
	args := []any{collectionID}
	if len(statuses) > 0 {
		query += ` AND status IN (` + makePlaceholders(len(statuses)) + `)`
		for _, status := range statuses {
			args = append(args, status)
		}
	}
	return s.queryStamps(ctx, query+naturalOrder, args...)
}

func (s *Store) queryStamps(ctx context.Context, query string, args ...any) ([]*Stamp, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stamps: %w", err)
	}
	defer rows.Close()

	var stamps []*Stamp
	for rows.Next() {
		stamp, err := scanStamp(rows)
		if err != nil {
			return nil, err
		}
		stamps = append(stamps, stamp)
	}
	return stamps, rows.Err()
}

const stampColumns = "id, album_id, catalog_number, catalog_prefix, catalog_value, catalog_suffix, catalog_system, country, year, denomination, color, condition, status, price_cents, notes, created_at, updated_at"

func scanStamp(scanner interface{ Scan(dest ...any) error }) (*Stamp, error) {
	var (
		id           int64
		albumID      int64
		number       string
		prefix       string
		value        int64
		suffix       string
		system       sql.NullString
		country      sql.NullString
		year         sql.NullInt64
		denomination sql.NullString
		color        sql.NullString
		condition    sql.NullString
		statusStr    string
		priceCents   sql.NullInt64
		notes        sql.NullString
		createdRaw   sql.NullString
		updatedRaw   sql.NullString
	)
	if err := scanner.Scan(
		&id,
		&albumID,
		&number,
		&prefix,
		&value,
		&suffix,
		&system,
		&country,
		&year,
		&denomination,
		&color,
		&condition,
		&statusStr,
		&priceCents,
		&notes,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	stamp := &Stamp{
		ID:            id,
		AlbumID:       albumID,
		CatalogNumber: number,
		Prefix:        prefix,
		Value:         value,
		Suffix:        suffix,
		CatalogSystem: system.String,
		Country:       country.String,
		Year:          int(year.Int64),
		Denomination:  denomination.String,
		Color:         color.String,
		Condition:     condition.String,
		Status:        Status(statusStr),
		PriceCents:    priceCents.Int64,
		Notes:         notes.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		stamp.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		stamp.UpdatedAt = updated
	}
	return stamp, nil
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
