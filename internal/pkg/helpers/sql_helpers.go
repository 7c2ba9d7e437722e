package helpers

import "database/sql"

// GetContentNullString converts a string value to sql.NullString.
// An empty string maps to SQL NULL so that unique indexes on optional
// columns (like students.lrn) ignore absent values.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullString converts a string pointer to sql.NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
