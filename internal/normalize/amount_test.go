package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_BrazilianSeparator(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"R$ 1.234,56", "1234.56"},
		{"-1.000.000,00", "-1000000.00"},
		{"0,99", "0.99"},
		{"150", "150.00"},
		{"-42,50", "-42.50"},
	}
	for _, tt := range tests {
		got, err := Amount(tt.raw, ",")
		require.NoError(t, err, "input: %s", tt.raw)
		assert.Equal(t, tt.want, got.StringFixed(2), "input: %s", tt.raw)
	}
}

func TestAmount_DotSeparator(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{"-50.00", "-50.00"},
		{"100", "100.00"},
		{"  3500.00  ", "3500.00"},
	}
	for _, tt := range tests {
		got, err := Amount(tt.raw, ".")
		require.NoError(t, err, "input: %s", tt.raw)
		assert.Equal(t, tt.want, got.StringFixed(2), "input: %s", tt.raw)
	}
}

func TestAmount_EmptyIsZero(t *testing.T) {
	for _, raw := range []string{"", "   ", "R$", "$ "} {
		got, err := Amount(raw, ",")
		require.NoError(t, err, "input: %q", raw)
		assert.True(t, got.IsZero(), "input: %q", raw)
	}
}

func TestAmount_Residue(t *testing.T) {
	for _, raw := range []string{"abc", "12x34", "R$ dez reais", "--5"} {
		_, err := Amount(raw, ",")
		require.Error(t, err, "input: %q", raw)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input: %q", raw)
		assert.Equal(t, "amount", perr.Field)
		assert.Equal(t, raw, perr.Value)
	}
}
