// Package sanitize implements the input sanitation boundary.
// Every mutable string field crosses through here before persistence.
package sanitize

import (
	"html"
	"strings"
)

// String trims surrounding whitespace and escapes HTML metacharacters.
func String(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// Strings applies String to every element of a slice.
func Strings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = String(s)
	}
	return out
}

// Value recursively sanitizes string leaves of an arbitrary decoded JSON
// value. Maps and slices are walked; every non-string leaf passes through
// unchanged.
func Value(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		return Map(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Value(e)
		}
		return out
	default:
		return v
	}
}

// Map sanitizes every value of a decoded JSON object in place and returns it.
func Map(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = Value(v)
	}
	return m
}
