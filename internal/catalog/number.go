package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Number is a parsed catalog number. Prefix holds the leading non-digit run
// uppercased, Value the first digit run (0 when absent), and Suffix everything
// after the digit run, lowercased, including any embedded digits.
type Number struct {
	Prefix string
	Value  int64
	Suffix string
}

// Parse splits a raw catalog number into its prefix, numeric value, and
// suffix. It never fails: input without digits yields Value 0, and digit runs
// too large for an int64 clamp to the maximum value. Only the first digit run
// is captured; "12A34" parses as prefix "", value 12, suffix "a34". This
// mirrors the historical behavior of the record format and is kept for
// compatibility.
func Parse(raw string) Number {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Number{}
	}

	start := 0
	for start < len(trimmed) && !isDigit(trimmed[start]) {
		start++
	}
	end := start
	for end < len(trimmed) && isDigit(trimmed[end]) {
		end++
	}

	value := int64(0)
	if end > start {
		parsed, err := strconv.ParseInt(trimmed[start:end], 10, 64)
		if err != nil {
			parsed = math.MaxInt64
		}
		value = parsed
	}

	return Number{
		Prefix: strings.ToUpper(trimmed[:start]),
		Value:  value,
		Suffix: strings.ToLower(trimmed[end:]),
	}
}

// String reconstructs the normalized (case-folded) form of the number.
func (n Number) String() string {
	return n.Prefix + strconv.FormatInt(n.Value, 10) + n.Suffix
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
