package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Formats(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-01-15", "2025-01-15"},
		{"15/01/2025", "2025-01-15"},
		{"2025/01/15", "2025-01-15"},
		{"15-01-2025", "2025-01-15"},
		{"15.01.2025", "2025-01-15"},
		{"20250115", "2025-01-15"},
		{" 2025-01-15 ", "2025-01-15"},
	}
	for _, tt := range tests {
		got, err := Date(tt.raw)
		require.NoError(t, err, "input: %s", tt.raw)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "input: %s", tt.raw)
	}
}

// Ambiguous slash dates resolve day/month first. This ordering is a
// contract: changing it changes behavior for real statement files.
func TestDate_DayMonthWinsOverMonthDay(t *testing.T) {
	got, err := Date("01/02/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", got.Format("2006-01-02"))
}

func TestDate_MonthDayFallback(t *testing.T) {
	// Day position exceeds 12, so the Brazilian layout cannot match and
	// the US layout takes over.
	got, err := Date("01/13/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-13", got.Format("2006-01-02"))
}

func TestDate_Unrecognized(t *testing.T) {
	for _, raw := range []string{"", "not a date", "2025", "32/01/2025", "Jan 2, 2025"} {
		_, err := Date(raw)
		require.Error(t, err, "input: %q", raw)

		var perr *ParseError
		assert.True(t, errors.As(err, &perr), "input: %q", raw)
	}
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-01-02", "20250102"},
		{"2025-01-02 10:33:00", "20250102"},
		{"2025-01-02T10:33:00-03:00", "20250102"},
		{"02/01/2025", "20250102"},
		{"20250102", "20250102"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DateKey(tt.raw), "input: %s", tt.raw)
	}
}
