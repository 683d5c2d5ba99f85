package utils

import (
	"database/sql"
	"time"
)

// NullStringToPointer converts sql.NullString to *string
func NullStringToPointer(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// StringPointerToNull converts *string to sql.NullString
func StringPointerToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// TimeToMillis stores timestamps as UTC Unix milliseconds.
func TimeToMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// MillisToTime is the inverse of TimeToMillis.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
