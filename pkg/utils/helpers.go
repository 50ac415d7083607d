package utils

import (
	"fmt"
	"strings"
)

// String coerces a raw JSON value into its string form. Nil values
// become the empty string.
func String(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TrimmedString coerces like String and strips surrounding whitespace.
func TrimmedString(v interface{}) string {
	return strings.TrimSpace(String(v))
}

// Float extracts a float64 from a raw JSON value. The second return
// reports whether the value was numeric.
func Float(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

// Int extracts an int from a raw JSON value. JSON numbers decode as
// float64, so whole floats are accepted.
func Int(v interface{}) (int, bool) {
	f, ok := Float(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool extracts a bool from a raw JSON value, false when absent or of
// another type.
func Bool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
