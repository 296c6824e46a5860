package catalog_test

import (
	"testing"

	"perfin/internal/catalog"
)

func TestInRange(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		lower     string
		upper     string
		want      bool
	}{
		{"inside", "50", "1", "100", true},
		{"above upper", "150", "1", "100", false},
		{"below lower", "5", "10", "100", false},
		{"at lower", "1", "1", "100", true},
		{"at upper", "100", "1", "100", true},
		{"no bounds", "anything", "", "", true},
		{"lower only", "7", "5", "", true},
		{"lower only below", "3", "5", "", false},
		{"upper only", "3", "", "5", true},
		{"upper only above", "7", "", "5", false},
		{"prefixed inside", "C10", "C1", "C50", true},
		{"prefixed outside", "C99", "C1", "C50", false},
		{"suffix at upper edge", "50a", "1", "50", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.InRange(tc.candidate, tc.lower, tc.upper); got != tc.want {
				t.Fatalf("InRange(%q, %q, %q) = %v, want %v", tc.candidate, tc.lower, tc.upper, got, tc.want)
			}
		})
	}
}

func TestInRangePrefixPartitioning(t *testing.T) {
	// An unprefixed range never rejects a prefixed series and vice versa.
	if !catalog.InRange("C10", "1", "50") {
		t.Fatal("expected C10 to pass the unprefixed range 1-50")
	}
	if !catalog.InRange("5", "C1", "C50") {
		t.Fatal("expected 5 to pass the C-series range")
	}
}
