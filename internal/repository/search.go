package repository

import "strings"

// containsPattern builds a LIKE pattern for a case-insensitive substring
// match against a LOWER()ed column. It works the same on PostgreSQL and SQLite.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
