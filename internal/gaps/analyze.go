package gaps

import (
	"fmt"
	"sort"
)

// DefaultMaxSpan is the widest min-to-max distance the analyzer will
// enumerate. Sparse or extreme inputs beyond the cap report no gaps instead
// of producing an enormous missing list.
const DefaultMaxSpan = 1000

// Result is the outcome of a gap analysis. It is derived on demand and never
// persisted.
type Result struct {
	OwnedCount           int      `json:"owned_count"`
	WantedCount          int      `json:"wanted_count"`
	Missing              []int    `json:"missing_numbers"`
	CompressedRanges     []string `json:"compressed_ranges"`
	CompletionPercentage float64  `json:"completion_percentage"`
	SpanExceeded         bool     `json:"span_exceeded,omitempty"`
}

// Analyzer computes gap analyses. The zero value uses DefaultMaxSpan.
type Analyzer struct {
	// MaxSpan overrides the enumeration cap when positive.
	MaxSpan int
}

// Analyze computes the missing numbers between the lowest and highest member
// of owned ∪ wanted. An empty union yields an empty result. When the span
// reaches the cap, Missing stays empty and SpanExceeded is set.
func (a Analyzer) Analyze(owned, wanted map[int]struct{}) Result {
	result := Result{
		OwnedCount:  len(owned),
		WantedCount: len(wanted),
	}

	all := make(map[int]struct{}, len(owned)+len(wanted))
	for n := range owned {
		all[n] = struct{}{}
	}
	for n := range wanted {
		all[n] = struct{}{}
	}
	if len(all) == 0 {
		return result
	}

	lowest, highest := bounds(all)
	maxSpan := a.MaxSpan
	if maxSpan <= 0 {
		maxSpan = DefaultMaxSpan
	}
	if highest-lowest >= maxSpan {
		result.SpanExceeded = true
		if total := result.OwnedCount + result.WantedCount; total > 0 {
			result.CompletionPercentage = 100 * float64(result.OwnedCount) / float64(total)
		}
		return result
	}

	for n := lowest; n <= highest; n++ {
		if _, ok := all[n]; !ok {
			result.Missing = append(result.Missing, n)
		}
	}
	result.CompressedRanges = CompressRanges(result.Missing)

	span := highest - lowest + 1
	result.CompletionPercentage = 100 * float64(result.OwnedCount) / float64(span)
	return result
}

// Analyze runs a gap analysis with the default span cap.
func Analyze(owned, wanted map[int]struct{}) Result {
	return Analyzer{}.Analyze(owned, wanted)
}

// CompressRanges collapses sorted integers into "#N" and "#N-M" tokens.
// Consecutive runs compress to a single token; isolated values stand alone.
func CompressRanges(values []int) []string {
	if len(values) == 0 {
		return nil
	}
	var ranges []string
	start := values[0]
	prev := values[0]
	for _, v := range values[1:] {
		if v == prev+1 {
			prev = v
			continue
		}
		ranges = append(ranges, formatRange(start, prev))
		start, prev = v, v
	}
	return append(ranges, formatRange(start, prev))
}

func formatRange(start, end int) string {
	if start == end {
		return fmt.Sprintf("#%d", start)
	}
	return fmt.Sprintf("#%d-%d", start, end)
}

func bounds(set map[int]struct{}) (lowest, highest int) {
	first := true
	for n := range set {
		if first {
			lowest, highest = n, n
			first = false
			continue
		}
		if n < lowest {
			lowest = n
		}
		if n > highest {
			highest = n
		}
	}
	return lowest, highest
}

// SetOf builds an integer set from a slice.
func SetOf(values ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Sorted returns the members of a set in ascending order.
func Sorted(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
