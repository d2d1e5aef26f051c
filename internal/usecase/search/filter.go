package search

import "strings"

// Searchable exposes the fields a text query is matched against.
type Searchable interface {
	SearchFields() []string
}

// Filter returns the ordered subsequence of items with at least one field containing
// query, case-insensitively. A blank query returns items unchanged.
func Filter[T Searchable](items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// WithFallback filters items and returns the full collection when nothing matched.
// fallback reports whether the full collection was substituted.
func WithFallback[T Searchable](items []T, query string) (result []T, fallback bool) {
	filtered := Filter(items, query)
	if len(filtered) == 0 && len(items) > 0 {
		return items, true
	}
	return filtered, false
}

func matches(it Searchable, lowerQuery string) bool {
	for _, f := range it.SearchFields() {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}
