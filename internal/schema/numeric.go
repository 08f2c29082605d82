// In file: internal/schema/numeric.go
package schema

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// Models hand tools numeric fields as free text with units attached, e.g.
// "20°C", "65%", or "12 km/h". Coercion extracts the first signed decimal
// number; anything without one falls back to a caller-supplied default so
// that component construction never fails on a malformed value.

// DefaultTemperature is the documented fallback for an unparseable
// weather-card temperature.
const DefaultTemperature = 20.0

var numberPattern = regexp.MustCompile(`-?\d+\.?\d*`)

// CoerceFloat extracts a float from v, returning fallback when no number
// can be found.
func CoerceFloat(v any, fallback float64) float64 {
	if f, ok := extractNumber(v); ok {
		return f
	}
	return fallback
}

// CoerceOptionalFloat extracts a float from v, returning nil for absent or
// unparseable values so that optional fields stay unset.
func CoerceOptionalFloat(v any) *float64 {
	if f, ok := extractNumber(v); ok {
		return &f
	}
	return nil
}

// CoerceOptionalInt is CoerceOptionalFloat truncated to an integer.
func CoerceOptionalInt(v any) *int {
	if f, ok := extractNumber(v); ok {
		n := int(f)
		return &n
	}
	return nil
}

func extractNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		match := numberPattern.FindString(n)
		if match == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(match, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
