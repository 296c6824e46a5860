package library

import (
	"strings"
	"time"
)

// Status represents ownership of a stamp record.
type Status string

const (
	StatusOwned  Status = "owned"
	StatusWanted Status = "wanted"
	StatusSold   Status = "sold"
)

var allStatuses = []Status{StatusOwned, StatusWanted, StatusSold}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// Collection is the top of the hierarchy and owns albums.
type Collection struct {
	ID            int64
	Name          string
	Description   string
	CatalogSystem string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Album groups stamps inside a collection, typically by country and period.
type Album struct {
	ID           int64
	CollectionID int64
	Name         string
	Country      string
	YearStart    int
	YearEnd      int
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Stamp is a single record. CatalogNumber keeps the raw user input; Prefix,
// Value, and Suffix hold the parsed form so SQL can order listings naturally.
type Stamp struct {
	ID            int64
	AlbumID       int64
	CatalogNumber string
	Prefix        string
	Value         int64
	Suffix        string
	CatalogSystem string
	Country       string
	Year          int
	Denomination  string
	Color         string
	Condition     string
	Status        Status
	PriceCents    int64
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SavedFilter is a stored predicate evaluated across all stamps (a "smart
// collection"): every field is optional and empty means unconstrained.
type SavedFilter struct {
	ID         int64
	Name       string
	Status     Status
	Country    string
	LowerBound string
	UpperBound string
	YearStart  int
	YearEnd    int
	CreatedAt  time.Time
}

// Stats counts stamps per status across the whole library.
type Stats struct {
	Total  int
	Owned  int
	Wanted int
	Sold   int
}

// DatabaseHealth captures diagnostic information about the library database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TablesPresent    []string
	MissingTables    []string
	IntegrityCheck   bool
	TotalStamps      int
	Error            string
}
