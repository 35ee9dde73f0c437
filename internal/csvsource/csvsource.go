// Package csvsource reads a tabular statement file into raw rows keyed
// by header column name.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
)

// Read parses CSV data with the given field delimiter. The first record
// is the header; every following record becomes one Row. Header names
// are trimmed and a UTF-8 BOM on the first column is dropped.
func Read(r io.Reader, delimiter rune) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	// Ragged exports are common; short rows just leave columns unset.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.Trim(h, `"`))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []model.Row
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(rec) {
				fields[col] = rec[j]
			}
		}
		rows = append(rows, model.Row{Index: i, Fields: fields})
	}
	return rows, nil
}

// ReadFile reads rows from a CSV file on disk.
func ReadFile(path string, delimiter rune) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
