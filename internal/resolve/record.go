// Package resolve implements ordered fallback resolution over loosely
// typed upstream records. Admin screens populate the same logical field
// under different names and nestings, so every read here tries an
// explicit candidate list and degrades to "not defined" instead of
// failing.
package resolve

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is one upstream row as it arrives from a JSON API: keys and
// shapes vary between screens, values may be numbers, numeric strings
// or nested objects.
type Record map[string]any

// Money coerces a raw record value to a price. The bool result is false
// for nil, non-numeric and non-finite values; zero is a defined value.
func Money(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}

		return finite(parsed)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false
		}

		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}

		return finite(parsed)
	default:
		return 0, false
	}
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// Field returns an accessor that tries keys on rec in order and yields
// the first one holding a defined money value. A nil record yields
// nothing.
func Field(rec Record, keys ...string) Accessor {
	return func() (float64, bool) {
		if rec == nil {
			return 0, false
		}

		for _, key := range keys {
			raw, ok := rec[key]
			if !ok {
				continue
			}

			if v, defined := Money(raw); defined {
				return v, true
			}
		}

		return 0, false
	}
}

// Child returns the nested record under key, or nil when the value is
// absent or not an object.
func Child(rec Record, key string) Record {
	if rec == nil {
		return nil
	}

	switch child := rec[key].(type) {
	case Record:
		return child
	case map[string]any:
		return Record(child)
	default:
		return nil
	}
}

// List returns the array of records under key. Non-object elements are
// skipped.
func List(rec Record, key string) []Record {
	if rec == nil {
		return nil
	}

	raw, ok := rec[key].([]any)
	if !ok {
		return nil
	}

	out := make([]Record, 0, len(raw))

	for _, elem := range raw {
		switch rec := elem.(type) {
		case Record:
			out = append(out, rec)
		case map[string]any:
			out = append(out, Record(rec))
		}
	}

	return out
}

// Text returns the string under key, trimmed, or "" when absent or not
// a string.
func Text(rec Record, key string) string {
	if rec == nil {
		return ""
	}

	s, ok := rec[key].(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(s)
}
