package normalize

import (
	"errors"
	"strings"
	"time"
)

// dateFormats is tried in order; the first match wins. The ordering is a
// behavioral contract: "01/02/2025" parses as Brazilian day/month (Feb 1)
// because that layout is tried before US month/day. Callers must supply a
// consistent source format per file.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"02.01.2006",
	"20060102",
}

// Date parses a raw date string against the supported layouts.
func Date(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Field: "date", Value: raw, Err: errors.New("unrecognized date format")}
}

// DateKey reduces a raw date string to its compact YYYYMMDD form for
// identifier generation, dropping any embedded time or timezone suffix
// ("2025-01-02 10:33:00" and "2025-01-02T10:33:00-03:00" both key as
// "20250102"). When the remainder does not parse as a date, the trimmed
// string is returned unchanged so the result stays deterministic.
func DateKey(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	t, err := Date(s)
	if err != nil {
		return s
	}
	return t.Format("20060102")
}
