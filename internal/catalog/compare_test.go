package catalog_test

import (
	"reflect"
	"testing"

	"perfin/internal/catalog"
)

func TestCompareNumericNotLexicographic(t *testing.T) {
	if catalog.Compare("2", "10") >= 0 {
		t.Fatal("expected 2 to order before 10")
	}
	values := []string{"10", "2", "1"}
	catalog.NewComparator(catalog.Ascending).Sort(values)
	if !reflect.DeepEqual(values, []string{"1", "2", "10"}) {
		t.Fatalf("unexpected order: %v", values)
	}
}

func TestComparePrefixSeries(t *testing.T) {
	values := []string{"C1", "1", "O1"}
	catalog.NewComparator(catalog.Ascending).Sort(values)
	if !reflect.DeepEqual(values, []string{"1", "C1", "O1"}) {
		t.Fatalf("unexpected order: %v", values)
	}
}

func TestCompareSuffixBreaksTies(t *testing.T) {
	values := []string{"5b", "5", "5a"}
	catalog.NewComparator(catalog.Ascending).Sort(values)
	if !reflect.DeepEqual(values, []string{"5", "5a", "5b"}) {
		t.Fatalf("unexpected order: %v", values)
	}
}

func TestCompareDescending(t *testing.T) {
	values := []string{"1", "10", "2"}
	catalog.NewComparator(catalog.Descending).Sort(values)
	if !reflect.DeepEqual(values, []string{"10", "2", "1"}) {
		t.Fatalf("unexpected order: %v", values)
	}
}

func TestCompareCaseInsensitive(t *testing.T) {
	if catalog.Compare("c5", "C5") != 0 {
		t.Fatal("expected c5 and C5 to compare equal")
	}
}

func TestCompareIdempotent(t *testing.T) {
	first := catalog.Compare("C10", "C2")
	for i := 0; i < 5; i++ {
		if catalog.Compare("C10", "C2") != first {
			t.Fatal("comparison result changed between identical calls")
		}
	}
}
