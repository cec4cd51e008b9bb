package app

import "strings"

// isBlank reports whether a decoded JSON value counts as not provided:
// absent, null, whitespace-only text, false, zero, or an empty array/object.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
