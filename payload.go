package bunnydns

import (
	"encoding/json"
	"fmt"
	"time"
)

// payload is the loosely-typed form of an API response body, as produced by
// encoding/json into a string-keyed map. Entity decoders read it key by key
// and substitute a documented default wherever a key is absent or null, so
// partial payloads never fail.
type payload map[string]any

// int64Or returns the integer at key, or def when absent, null, or not a
// number.
func (p payload) int64Or(key string, def int64) int64 {
	if n, ok := p[key]; ok {
		switch v := n.(type) {
		case float64:
			return int64(v)
		case int:
			return int64(v)
		case int64:
			return v
		case json.Number:
			if i, err := v.Int64(); err == nil {
				return i
			}
		}
	}
	return def
}

// intOr is int64Or narrowed to int.
func (p payload) intOr(key string, def int) int {
	return int(p.int64Or(key, int64(def)))
}

// floatOr returns the float at key, or def when absent, null, or not a
// number.
func (p payload) floatOr(key string, def float64) float64 {
	if n, ok := p[key]; ok {
		switch v := n.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f
			}
		}
	}
	return def
}

// boolOr returns the bool at key, or def when absent, null, or not a bool.
func (p payload) boolOr(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

// stringOr returns the string at key, or def when absent or null.
func (p payload) stringOr(key string, def string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return def
}

// object returns the nested payload at key. Absent, null, and empty values
// all yield nil, so nested optional objects decode to "absent" rather than
// a zero-valued instance.
func (p payload) object(key string) payload {
	m, ok := p[key].(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	return payload(m)
}

// list returns the elements at key in wire order. Absent and null both
// yield an empty slice.
func (p payload) list(key string) []any {
	if l, ok := p[key].([]any); ok {
		return l
	}
	return nil
}

// timestampLayouts are tried in order. The vendor emits ISO-8601 with a
// literal Z designator, a numeric offset, or no zone at all, with or
// without fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// timestamp parses the ISO-8601 string at key. Absent and null yield nil;
// a present but malformed value is a DecodeError.
func (p payload) timestamp(key string) (*time.Time, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &DecodeError{msg: fmt.Sprintf("malformed timestamp in %q: expected string, got %T", key, raw)}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, &DecodeError{msg: fmt.Sprintf("malformed timestamp in %q: %q", key, s)}
}
