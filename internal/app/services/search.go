package services

import "strings"

// matchesSearch reports whether the query is a case-insensitive substring of
// the concatenation of the given fields. List views filter over the full
// fetched result set with this rule; an empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, strings.ToLower(query))
}
