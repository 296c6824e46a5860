package catalog

import "strings"

// InRange reports whether candidate falls inside the [lower, upper] bound.
// Empty bounds are unconstrained. A bound only constrains the candidate when
// their prefixes are equal: a range of "1"-"50" does not exclude "C10",
// because the C series partitions away from the unprefixed bound. Collections
// mixing prefixes rely on this partitioning, so it must not be tightened.
func InRange(candidate, lower, upper string) bool {
	lower = strings.TrimSpace(lower)
	upper = strings.TrimSpace(upper)
	if lower == "" && upper == "" {
		return true
	}

	comparator := NewComparator(Ascending)
	parsed := Parse(candidate)

	if lower != "" {
		bound := Parse(lower)
		if parsed.Prefix == bound.Prefix && comparator.compareParsed(parsed, bound) < 0 {
			return false
		}
	}
	if upper != "" {
		bound := Parse(upper)
		if parsed.Prefix == bound.Prefix && comparator.compareParsed(parsed, bound) > 0 {
			return false
		}
	}
	return true
}
