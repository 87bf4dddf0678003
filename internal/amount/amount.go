// Package amount converts raw feed amounts into canonical float64 values.
package amount

import (
	"math"
	"strconv"
	"strings"
)

// stripper removes quote and thousands-separator characters before parsing.
var stripper = strings.NewReplacer(`"`, "", `'`, "", ",", "")

// Normalize converts a raw amount into a float64.
//
// Numeric inputs pass through unchanged, nil and empty strings become 0, and
// any other string is parsed after stripping quotes and commas. An unparseable
// remainder yields NaN: the value propagates into differences and totals
// instead of being masked as zero, so a corrupt amount stays visible in the
// report rather than classifying as a clean match.
func Normalize(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if n == "" {
			return 0
		}
		f, err := strconv.ParseFloat(stripper.Replace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Round2 rounds to two decimal places. NaN passes through.
func Round2(f float64) float64 {
	if math.IsNaN(f) {
		return f
	}
	return math.Round(f*100) / 100
}
