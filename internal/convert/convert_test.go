package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/ofx"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/profile"
)

func usProfile() *profile.Profile {
	return &profile.Profile{
		Source: profile.SourceConfig{
			Delimiter:        ",",
			DecimalSeparator: ".",
		},
		Mapping: profile.MappingConfig{
			Date:        "Date",
			Amount:      "Amount",
			Description: "Description",
		},
		Account: profile.AccountConfig{
			ID:       "12345",
			Bank:     "Test Bank",
			Currency: "USD",
		},
		Balance: profile.BalanceConfig{Initial: "0.00"},
	}
}

func brProfile() *profile.Profile {
	return &profile.Profile{
		Source: profile.SourceConfig{
			Delimiter:        ";",
			DecimalSeparator: ",",
		},
		Mapping: profile.MappingConfig{
			Date:        "Data",
			Amount:      "Valor",
			Description: "Descricao",
			ID:          "Identificador",
		},
		Account: profile.AccountConfig{
			ID:       "98765",
			Bank:     "Banco Exemplo",
			Currency: "BRL",
		},
		Balance: profile.BalanceConfig{Initial: "0.00"},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.ofx")
	res, err := Run(zerolog.Nop(), usProfile(), "../../testdata/statement_us.csv", outPath)
	require.NoError(t, err)

	assert.Len(t, res.Transactions, 2)
	assert.Equal(t, "100.00", res.Balance.TotalCredits.StringFixed(2))
	assert.Equal(t, "50.00", res.Balance.TotalDebits.StringFixed(2))
	assert.Equal(t, "50.00", res.Balance.ComputedFinal.StringFixed(2))
	assert.Equal(t, 2, res.Stats.Processed)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "OFXHEADER:100\n"))
	assert.Contains(t, out, "<DTSTART>20250101000000[-3:BRT]\n")
	assert.Contains(t, out, "<DTEND>20250102000000[-3:BRT]\n")
	// Sorted by date: deposit first.
	assert.True(t, strings.Index(out, "<MEMO>Opening deposit") < strings.Index(out, "<MEMO>Grocery store"))
}

func TestRun_BrazilianDialect(t *testing.T) {
	prof := brProfile()
	prof.Period = profile.PeriodConfig{Enabled: true, Start: "2025-01-01", End: "2025-01-31"}

	outPath := filepath.Join(t.TempDir(), "out.ofx")
	res, err := Run(zerolog.Nop(), prof, "../../testdata/extrato_cartao.csv", outPath)
	require.NoError(t, err)

	// 6 rows: 4 within range, one before (adjusted to the start), one
	// after (kept with its original date).
	assert.Equal(t, 6, res.Stats.TotalRows)
	assert.Equal(t, 6, res.Stats.Processed)
	assert.Equal(t, 1, res.Stats.Adjusted)
	assert.Equal(t, 1, res.Stats.KeptOutOfRange)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)

	// Locale parsing: 1.250,00 is one thousand two hundred fifty.
	assert.Contains(t, out, "<TRNAMT>1250.00\n")
	// The early December row was snapped to the period start.
	assert.Contains(t, out, "<MEMO>Assinatura streaming\n")
	assert.NotContains(t, out, "<DTPOSTED>20241215")
	// The late February row kept its date and stretches DTEND.
	assert.Contains(t, out, "<DTEND>20250215000000[-3:BRT]\n")
	// External id used verbatim when mapped and present.
	assert.Contains(t, out, "<FITID>REF-1001\n")
	// Empty description falls back to the default memo.
	assert.Contains(t, out, "<MEMO>Transaction\n")
	assert.Contains(t, out, "<CURDEF>BRL\n")
}

func TestRun_UserReview(t *testing.T) {
	prof := brProfile()
	prof.Period = profile.PeriodConfig{Enabled: true, Start: "2025-01-01", End: "2025-01-31"}
	// Drop the zero-amount row outright and exclude the December row.
	prof.Review = profile.ReviewConfig{
		DeletedRows: []int{5},
		Decisions:   map[int]string{2: "exclude"},
	}

	outPath := filepath.Join(t.TempDir(), "out.ofx")
	res, err := Run(zerolog.Nop(), prof, "../../testdata/extrato_cartao.csv", outPath)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Stats.Processed)
	assert.Equal(t, 2, res.Stats.Excluded)
	assert.Equal(t, 1, res.Stats.Deleted)
	assert.Equal(t, 0, res.Stats.Adjusted)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Assinatura streaming")
}

func TestRun_ManualFinalBalance(t *testing.T) {
	prof := usProfile()
	prof.Balance.Final = "999.99"

	outPath := filepath.Join(t.TempDir(), "out.ofx")
	res, err := Run(zerolog.Nop(), prof, "../../testdata/statement_us.csv", outPath)
	require.NoError(t, err)

	// Totals are computed; the serialized ledger balance is the override.
	assert.Equal(t, "50.00", res.Balance.ComputedFinal.StringFixed(2))
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<LEDGERBAL>\n<BALAMT>999.99\n")
}

func TestRun_NoSurvivorsWritesNothing(t *testing.T) {
	prof := usProfile()
	prof.Review.DeletedRows = []int{0, 1}

	outPath := filepath.Join(t.TempDir(), "out.ofx")
	_, err := Run(zerolog.Nop(), prof, "../../testdata/statement_us.csv", outPath)
	require.ErrorIs(t, err, ofx.ErrNoTransactions)

	_, err = os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.ofx")
	_, err := Run(zerolog.Nop(), usProfile(), "../../testdata/nope.csv", outPath)
	require.Error(t, err)
}

func TestPreview_MatchesRun(t *testing.T) {
	prof := brProfile()
	prof.Period = profile.PeriodConfig{Enabled: true, Start: "2025-01-01", End: "2025-01-31"}

	pre, err := Preview(zerolog.Nop(), prof, "../../testdata/extrato_cartao.csv")
	require.NoError(t, err)
	assert.Empty(t, pre.OutputPath)

	run, err := Run(zerolog.Nop(), prof, "../../testdata/extrato_cartao.csv", filepath.Join(t.TempDir(), "out.ofx"))
	require.NoError(t, err)

	assert.Equal(t, pre.Stats, run.Stats)
	assert.True(t, pre.Balance.ComputedFinal.Equal(run.Balance.ComputedFinal))
	require.Equal(t, len(pre.Transactions), len(run.Transactions))
	for i := range pre.Transactions {
		assert.Equal(t, pre.Transactions[i].FITID, run.Transactions[i].FITID, "txn %d", i)
	}
}
