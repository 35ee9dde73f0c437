package model

import "strings"

// Row is one parsed source record, keyed by header column name.
// Rows are built once by the CSV source and read-only afterwards.
type Row struct {
	Index  int // 0-based position among data rows
	Fields map[string]string
}

// Get returns the raw value of a column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r.Fields[column]
}

// GetTrimmed returns the column value with surrounding whitespace removed.
func (r Row) GetTrimmed(column string) string {
	return strings.TrimSpace(r.Fields[column])
}
