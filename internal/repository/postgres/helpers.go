package postgres

import (
	"database/sql"
	"strings"
)

func nullableString(ptr *string) sql.NullString {
	if ptr == nil {
		return sql.NullString{Valid: false}
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: v, Valid: true}
}

func likePattern(term string) string {
	return "%" + strings.TrimSpace(term) + "%"
}
