package report

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"perfin/internal/gaps"
	"perfin/internal/library"
)

// Scope selects the stamps feeding a report: a whole collection or one album.
type Scope struct {
	CollectionID int64
	AlbumID      int64
}

// SeriesGaps is the gap analysis for one catalog series.
type SeriesGaps struct {
	CatalogSystem string      `json:"catalog_system"`
	Prefix        string      `json:"prefix"`
	Result        gaps.Result `json:"result"`
}

// Label names the series for display: "C" for the airmail prefix, "(plain)"
// for the unprefixed series.
func (s SeriesGaps) Label() string {
	if s.Prefix == "" {
		return "(plain)"
	}
	return s.Prefix
}

// GapReport aggregates per-series analyses with roll-up totals.
type GapReport struct {
	Series       []SeriesGaps `json:"series"`
	TotalOwned   int          `json:"total_owned"`
	TotalWanted  int          `json:"total_wanted"`
	TotalMissing int          `json:"total_missing"`
}

// Options tune report generation.
type Options struct {
	// MaxGapSpan overrides the analyzer enumeration cap when positive.
	MaxGapSpan int
}

// Gaps builds the gap report for a scope. Sold stamps are out of the
// collection and do not participate.
func Gaps(ctx context.Context, store *library.Store, scope Scope, opts Options) (*GapReport, error) {
	stamps, err := stampsForScope(ctx, store, scope)
	if err != nil {
		return nil, err
	}

	type seriesKey struct {
		system string
		prefix string
	}
	owned := make(map[seriesKey]map[int]struct{})
	wanted := make(map[seriesKey]map[int]struct{})
	ensure := func(m map[seriesKey]map[int]struct{}, key seriesKey) map[int]struct{} {
		set, ok := m[key]
		if !ok {
			set = make(map[int]struct{})
			m[key] = set
		}
		return set
	}

	keys := make(map[seriesKey]struct{})
	for _, stamp := range stamps {
		key := seriesKey{system: stamp.CatalogSystem, prefix: stamp.Prefix}
		switch stamp.Status {
		case library.StatusOwned:
			ensure(owned, key)[int(stamp.Value)] = struct{}{}
		case library.StatusWanted:
			ensure(wanted, key)[int(stamp.Value)] = struct{}{}
		default:
			continue
		}
		keys[key] = struct{}{}
	}

	ordered := make([]seriesKey, 0, len(keys))
	for key := range keys {
		ordered = append(ordered, key)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].system != ordered[j].system {
			return ordered[i].system < ordered[j].system
		}
		return ordered[i].prefix < ordered[j].prefix
	})

	analyzer := gaps.Analyzer{MaxSpan: opts.MaxGapSpan}
	result := &GapReport{}
	for _, key := range ordered {
		analysis := analyzer.Analyze(owned[key], wanted[key])
		result.Series = append(result.Series, SeriesGaps{
			CatalogSystem: key.system,
			Prefix:        key.prefix,
			Result:        analysis,
		})
		result.TotalOwned += analysis.OwnedCount
		result.TotalWanted += analysis.WantedCount
		result.TotalMissing += len(analysis.Missing)
	}
	return result, nil
}

func stampsForScope(ctx context.Context, store *library.Store, scope Scope) ([]*library.Stamp, error) {
	switch {
	case scope.AlbumID != 0:
		album, err := store.GetAlbum(ctx, scope.AlbumID)
		if err != nil {
			return nil, err
		}
		if album == nil {
			return nil, fmt.Errorf("album %d not found", scope.AlbumID)
		}
		return store.ListStampsByAlbum(ctx, scope.AlbumID)
	case scope.CollectionID != 0:
		collection, err := store.GetCollection(ctx, scope.CollectionID)
		if err != nil {
			return nil, err
		}
		if collection == nil {
			return nil, fmt.Errorf("collection %d not found", scope.CollectionID)
		}
		return store.ListStampsByCollection(ctx, scope.CollectionID)
	default:
		return nil, errors.New("report scope requires a collection or album")
	}
}

// TruncateRanges applies the display cap to a compressed range list. It
// returns the ranges to show and how many were cut; limit <= 0 disables
// truncation.
func TruncateRanges(ranges []string, limit int) ([]string, int) {
	if limit <= 0 || len(ranges) <= limit {
		return ranges, 0
	}
	return ranges[:limit], len(ranges) - limit
}
