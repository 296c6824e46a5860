package catalog_test

import (
	"testing"

	"perfin/internal/catalog"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw    string
		prefix string
		value  int64
		suffix string
	}{
		{"C5", "C", 5, ""},
		{"1", "", 1, ""},
		{"300D", "", 300, "d"},
		{"c5a", "C", 5, "a"},
		{"", "", 0, ""},
		{"   ", "", 0, ""},
		{"abc", "ABC", 0, ""},
		{"12A34", "", 12, "a34"},
		{"1958-1964", "", 1958, "-1964"},
		{"O1", "O", 1, ""},
		{"99999999999999999999999", "", 9223372036854775807, ""},
	}
	for _, tc := range cases {
		parsed := catalog.Parse(tc.raw)
		if parsed.Prefix != tc.prefix || parsed.Value != tc.value || parsed.Suffix != tc.suffix {
			t.Errorf("Parse(%q) = %+v, want {%q %d %q}", tc.raw, parsed, tc.prefix, tc.value, tc.suffix)
		}
	}
}

func TestParseIsTotal(t *testing.T) {
	inputs := []string{"", "-", "--", "!!!", "C", "5C5C5", "\t\n", "Ω12ß", "0000"}
	for _, raw := range inputs {
		parsed := catalog.Parse(raw)
		if parsed.Value < 0 {
			t.Errorf("Parse(%q) produced negative value %d", raw, parsed.Value)
		}
	}
}

func TestStringNormalizes(t *testing.T) {
	if got := catalog.Parse("c5A").String(); got != "C5a" {
		t.Fatalf("expected normalized form C5a, got %q", got)
	}
}
