package layout

import (
	"math"
	"strconv"
	"strings"
)

// ParseSpan coerces raw control input into a span. Blank, non-numeric and
// non-positive input yields 1; fractional input is rounded.
func ParseSpan(raw string) int {
	v, ok := parseNumber(raw)
	if !ok {
		return 1
	}
	return ClampSpan(roundToInt(v))
}

// ParseColumns coerces raw control input into a column count of at least 1.
func ParseColumns(raw string) int {
	v, ok := parseNumber(raw)
	if !ok {
		return 1
	}
	n := roundToInt(v)
	if n < 1 {
		return 1
	}
	return n
}

// ParseCount coerces raw control input into a non-negative count.
func ParseCount(raw string) int {
	v, ok := parseNumber(raw)
	if !ok {
		return 0
	}
	n := roundToInt(v)
	if n < 0 {
		return 0
	}
	return n
}

// ParseSize coerces raw control input into a non-negative pixel size.
// Non-numeric input yields 0.
func ParseSize(raw string) float64 {
	v, ok := parseNumber(raw)
	if !ok {
		return 0
	}
	return nonNegative(v)
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func roundToInt(v float64) int {
	r := math.Round(v)
	switch {
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}
