package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order selects the direction of a comparison.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Comparator orders catalog numbers by (prefix, value, suffix). Prefix and
// suffix use locale collation so ordering stays stable regardless of the
// process locale. A Comparator is not safe for concurrent use.
type Comparator struct {
	order    Order
	collator *collate.Collator
}

// NewComparator returns a comparator for the given direction.
func NewComparator(order Order) *Comparator {
	return &Comparator{
		order:    order,
		collator: collate.New(language.Und),
	}
}

// Compare reports -1, 0, or 1 as a orders before, equal to, or after b.
func (c *Comparator) Compare(a, b string) int {
	result := c.compareParsed(Parse(a), Parse(b))
	if c.order == Descending {
		result = -result
	}
	return result
}

// Sort orders values in place.
func (c *Comparator) Sort(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return c.Compare(values[i], values[j]) < 0
	})
}

func (c *Comparator) compareParsed(a, b Number) int {
	if result := c.collator.CompareString(a.Prefix, b.Prefix); result != 0 {
		return result
	}
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}
	return c.collator.CompareString(a.Suffix, b.Suffix)
}

// Compare orders two catalog numbers ascending using a fresh comparator.
func Compare(a, b string) int {
	return NewComparator(Ascending).Compare(a, b)
}
