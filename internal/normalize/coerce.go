package normalize

import (
	"encoding/json"
	"fmt"
)

// Resolve tries each candidate key spelling in order against the bag and
// returns the first value that is present and non-nil, else def. Pure and
// total over all inputs.
func Resolve(bag map[string]any, keys []string, def any) any {
	if bag == nil {
		return def
	}
	for _, k := range keys {
		if v, ok := bag[k]; ok && v != nil {
			return v
		}
	}
	return def
}

// AsFlatString coerces a narrative value into a rendering-safe string.
// Strings pass through unchanged. Absence yields the missing placeholder for
// the field; a nested object yields the malformed placeholder. Anything else
// is stringified.
func AsFlatString(v any, field string) string {
	switch val := v.(type) {
	case nil:
		return missingPlaceholder(field)
	case string:
		return val
	case map[string]any:
		return malformedPlaceholder(field)
	default:
		return Stringify(val)
	}
}

// AsStringArray coerces a value into a string slice. Arrays have their
// elements stringified; anything else yields an empty slice.
func AsStringArray(v any) []string {
	switch val := v.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, el := range val {
			out = append(out, Stringify(el))
		}
		return out
	default:
		return []string{}
	}
}

// Stringify renders any decoded JSON value as a string. Strings come back
// as-is; everything else uses its JSON serialization.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
