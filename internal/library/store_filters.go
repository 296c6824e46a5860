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

// CreateSavedFilter stores a smart-collection predicate. Name must be unique.
func (s *Store) CreateSavedFilter(ctx context.Context, filter *SavedFilter) (*SavedFilter, error) {
	if filter == nil {
		return nil, errors.New("filter is nil")
	}
	name := strings.TrimSpace(filter.Name)
	if name == "" {
		return nil, errors.New("filter name is required")
	}
	if filter.Status != "" {
		if _, ok := ParseStatus(string(filter.Status)); !ok {
			return nil, fmt.Errorf("unknown status %q", filter.Status)
		}
	}

	res, err := s.exec(
		ctx,
		`INSERT INTO saved_filters (name, status, country, lower_bound, upper_bound, year_start, year_end, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		nullableString(string(filter.Status)),
		nullableString(filter.Country),
		nullableString(strings.TrimSpace(filter.LowerBound)),
		nullableString(strings.TrimSpace(filter.UpperBound)),
		filter.YearStart,
		filter.YearEnd,
		timestamp(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("insert filter: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetSavedFilter(ctx, id)
}

// GetSavedFilter fetches a saved filter by identifier. Missing rows return nil.
func (s *Store) GetSavedFilter(ctx context.Context, id int64) (*SavedFilter, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+filterColumns+` FROM saved_filters WHERE id = ?`, id)
	filter, err := scanFilter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get filter: %w", err)
	}
	return filter, nil
}

// FindSavedFilterByName returns the named filter, or nil.
func (s *Store) FindSavedFilterByName(ctx context.Context, name string) (*SavedFilter, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+filterColumns+` FROM saved_filters WHERE name = ?`, strings.TrimSpace(name))
	filter, err := scanFilter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find filter: %w", err)
	}
	return filter, nil
}

// ListSavedFilters returns all saved filters ordered by name.
func (s *Store) ListSavedFilters(ctx context.Context) ([]*SavedFilter, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+filterColumns+` FROM saved_filters ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	defer rows.Close()

	var filters []*SavedFilter
	for rows.Next() {
		filter, err := scanFilter(rows)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return filters, rows.Err()
}

// DeleteSavedFilter removes a saved filter by identifier.
func (s *Store) DeleteSavedFilter(ctx context.Context, id int64) (bool, error) {
	res, err := s.exec(ctx, `DELETE FROM saved_filters WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete filter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// RunSavedFilter evaluates a filter across all stamps. Status, country, and
// year bounds narrow the SQL query; the catalog range is evaluated in Go
// through the natural range filter, since its prefix-partitioning rule has no
// SQL equivalent. Results come back in natural catalog order.
func (s *Store) RunSavedFilter(ctx context.Context, filter *SavedFilter) ([]*Stamp, error) {
	if filter == nil {
		return nil, errors.New("filter is nil")
	}

	query := `SELECT ` + stampColumns + ` FROM stamps WHERE 1=1`
	var args []any
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if strings.TrimSpace(filter.Country) != "" {
		query += ` AND country = ? COLLATE NOCASE`
		args = append(args, strings.TrimSpace(filter.Country))
	}
	if filter.YearStart != 0 {
		query += ` AND year >= ?`
		args = append(args, filter.YearStart)
	}
	if filter.YearEnd != 0 {
		query += ` AND year <= ?`
		args = append(args, filter.YearEnd)
	}

	stamps, err := s.queryStamps(ctx, query+naturalOrder, args...)
	if err != nil {
		return nil, err
	}

	if filter.LowerBound == "" && filter.UpperBound == "" {
		return stamps, nil
	}
	matched := stamps[:0]
	for _, stamp := range stamps {
		if catalog.InRange(stamp.CatalogNumber, filter.LowerBound, filter.UpperBound) {
			matched = append(matched, stamp)
		}
	}
	return matched, nil
}

const filterColumns = "id, name, status, country, lower_bound, upper_bound, year_start, year_end, created_at"

func scanFilter(scanner interface{ Scan(dest ...any) error }) (*SavedFilter, error) {
	var (
		id         int64
		name       string
		status     sql.NullString
		country    sql.NullString
		lower      sql.NullString
		upper      sql.NullString
		yearStart  sql.NullInt64
		yearEnd    sql.NullInt64
		createdRaw sql.NullString
	)
	if err := scanner.Scan(&id, &name, &status, &country, &lower, &upper, &yearStart, &yearEnd, &createdRaw); err != nil {
		return nil, err
	}
	filter := &SavedFilter{
		ID:         id,
		Name:       name,
		Status:     Status(status.String),
		Country:    country.String,
		LowerBound: lower.String,
		UpperBound: upper.String,
		YearStart:  int(yearStart.Int64),
		YearEnd:    int(yearEnd.Int64),
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		filter.CreatedAt = created
	}
	return filter, nil
}
