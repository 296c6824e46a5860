package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"perfin/internal/config"
	"perfin/internal/library"
)

// Header is the canonical column order for stamp CSV files.
var Header = []string{
	"catalog_number",
	"catalog_system",
	"country",
	"year",
	"denomination",
	"color",
	"condition",
	"status",
	"notes",
}

// RowError describes a skipped import row.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ImportResult summarizes an import batch.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []RowError
}

// Import reads stamp rows from r into the given album. Empty catalog-system,
// status, and condition cells take the configured defaults. Rows that fail
// validation are skipped and reported; the batch continues.
func Import(ctx context.Context, store *library.Store, albumID int64, r io.Reader, defaults config.Defaults) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ImportResult{}, errors.New("csv input is empty")
		}
		return ImportResult{}, fmt.Errorf("read header: %w", err)
	}
	columns, err := mapColumns(header)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		stamp, rowErr := buildStamp(record, columns, albumID, defaults)
		if rowErr != "" {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: line, Reason: rowErr})
			continue
		}

		if _, err := store.CreateStamp(ctx, stamp); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		result.Imported++
	}
	return result, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["catalog_number"]; !ok {
		return nil, errors.New("csv header is missing the catalog_number column")
	}
	return columns, nil
}

func buildStamp(record []string, columns map[string]int, albumID int64, defaults config.Defaults) (*library.Stamp, string) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	number := cell("catalog_number")
	if number == "" {
		return nil, "catalog_number is empty"
	}

	statusValue := cell("status")
	if statusValue == "" {
		statusValue = defaults.StampStatus
	}
	status, ok := library.ParseStatus(statusValue)
	if !ok {
		return nil, fmt.Sprintf("unknown status %q", statusValue)
	}

	year := 0
	if raw := cell("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Sprintf("invalid year %q", raw)
		}
		year = parsed
	}

	system := cell("catalog_system")
	if system == "" {
		system = defaults.CatalogSystem
	}
	condition := cell("condition")
	if condition == "" {
		condition = defaults.StampCondition
	}

	return &library.Stamp{
		AlbumID:       albumID,
		CatalogNumber: number,
		CatalogSystem: system,
		Country:       cell("country"),
		Year:          year,
		Denomination:  cell("denomination"),
		Color:         cell("color"),
		Condition:     condition,
		Status:        status,
		Notes:         cell("notes"),
	}, ""
}

// Export writes stamps to w in the canonical column order. Stamps arrive
// already sorted by the store's natural catalog ordering.
func Export(w io.Writer, stamps []*library.Stamp) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, stamp := range stamps {
		year := ""
		if stamp.Year != 0 {
			year = strconv.Itoa(stamp.Year)
		}
		record := []string{
			stamp.CatalogNumber,
			stamp.CatalogSystem,
			stamp.Country,
			year,
			stamp.Denomination,
			stamp.Color,
			stamp.Condition,
			string(stamp.Status),
			stamp.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
