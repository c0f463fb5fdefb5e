package model

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// TimestampLayout is the ISO-8601 form used for createdAt (UTC, milliseconds).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Truthy reports whether a decoded JSON value counts as present:
// null, false, 0, NaN and "" do not; everything else (including empty
// arrays and objects) does.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return x != ""
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

// OrDefault returns v when it is truthy, otherwise def.
func OrDefault(v, def any) any {
	if Truthy(v) {
		return v
	}
	return def
}

// StringOrDefault returns s unless it is empty.
func StringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
