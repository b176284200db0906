// Package dig navigates the loosely shaped JSON maps the upstream API
// returns. The upstream schema is not stable across endpoints or seasons, so
// every lookup takes an explicit default instead of failing.
package dig

import (
	"strconv"
	"strings"
)

// Get walks keys through nested maps and returns def the moment a key is
// missing or the current value is not a map. An empty key list returns the
// container itself.
func Get(container any, def any, keys ...string) any {
	current := container
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[key]
		if !ok {
			return def
		}
	}
	return current
}

// Str returns the value at keys rendered as a string, or "" when absent.
// Numeric values are formatted so that fields the upstream sometimes sends
// as numbers (results, minutes) still resolve.
func Str(container any, keys ...string) string {
	switch v := Get(container, nil, keys...).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Int returns the value at keys as an int pointer, or nil when absent or not
// numeric. String digits are accepted since the upstream mixes both.
func Int(container any, keys ...string) *int {
	return AsInt(Get(container, nil, keys...))
}

// AsInt coerces a decoded JSON value to an int pointer, or nil.
func AsInt(v any) *int {
	switch v := v.(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &n
		}
	}
	return nil
}

// Map returns the map at keys, or nil.
func Map(container any, keys ...string) map[string]any {
	if m, ok := Get(container, nil, keys...).(map[string]any); ok {
		return m
	}
	return nil
}

// Slice returns the slice at keys, or nil.
func Slice(container any, keys ...string) []any {
	if s, ok := Get(container, nil, keys...).([]any); ok {
		return s
	}
	return nil
}
