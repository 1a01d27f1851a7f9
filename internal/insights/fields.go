package insights

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"treasurebook-backend/internal/records"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// str returns the first non-empty string value under keys. Numbers are formatted.
func str(r records.Record, keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64, int, int64, json.Number:
			return fmt.Sprint(v)
		}
	}
	return ""
}

// num returns the first numeric value under keys. Numeric strings are accepted.
func num(r records.Record, keys ...string) (float64, bool) {
	for _, key := range keys {
		var (
			f  float64
			ok bool
		)
		switch v := r[key].(type) {
		case float64:
			f, ok = v, true
		case float32:
			f, ok = float64(v), true
		case int:
			f, ok = float64(v), true
		case int32:
			f, ok = float64(v), true
		case int64:
			f, ok = float64(v), true
		case json.Number:
			parsed, err := v.Float64()
			f, ok = parsed, err == nil
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			f, ok = parsed, err == nil
		}
		if ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, false
}

func flag(r records.Record, keys ...string) bool {
	for _, key := range keys {
		switch v := r[key].(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return parsed
			}
		}
	}
	return false
}

// strList reads a string or a list of strings.
func strList(r records.Record, keys ...string) []string {
	var out []string
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				out = append(out, trimmed)
			}
		case []string:
			for _, item := range v {
				if trimmed := strings.TrimSpace(item); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
		}
	}
	return out
}

// timestamp returns milliseconds since epoch, or 0 when no usable date is present.
// Document-store timestamps ({seconds, nanoseconds}) are accepted alongside strings and numbers.
func timestamp(r records.Record, keys ...string) int64 {
	for _, key := range keys {
		switch v := r[key].(type) {
		case time.Time:
			return v.UnixMilli()
		case string:
			trimmed := strings.TrimSpace(v)
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, trimmed); err == nil {
					return t.UnixMilli()
				}
			}
		case float64:
			return int64(v)
		case int64:
			return v
		case int:
			return int64(v)
		case map[string]any:
			rec := records.Record(v)
			if secs, ok := num(rec, "seconds", "_seconds"); ok {
				nanos, _ := num(rec, "nanoseconds", "_nanoseconds")
				return int64(secs)*1000 + int64(nanos)/int64(time.Millisecond)
			}
		}
	}
	return 0
}
