package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseError reports a source value that could not be normalized.
// Rows failing with a ParseError are skipped, not fatal to a conversion.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Amount converts a raw amount string into a decimal, honoring the
// configured decimal separator. Currency symbols (R$, $) and surrounding
// whitespace are stripped first. With a "," separator, "." is treated as
// thousands grouping and "," as the decimal point; otherwise "," is
// grouping. An empty or whitespace-only value is exactly zero. Anything
// left over that is not numeric fails with a ParseError naming the
// original string.
func Amount(raw string, decimalSeparator string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	if decimalSeparator == "," {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Field: "amount", Value: raw, Err: err}
	}
	return d, nil
}
