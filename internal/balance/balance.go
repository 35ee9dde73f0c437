// Package balance aggregates finalized transactions into statement
// totals. Summarize is pure: the same transactions and initial balance
// always produce the same result.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
)

// Summarize partitions transactions by sign into credit and debit
// totals and computes the closing balance from the initial one. Debits
// are accumulated as absolute values, so both totals are non-negative.
func Summarize(txns []model.Transaction, initial decimal.Decimal) model.StatementBalance {
	credits := decimal.Zero
	debits := decimal.Zero
	for _, txn := range txns {
		if txn.Amount.IsNegative() {
			debits = debits.Add(txn.Amount.Abs())
		} else {
			credits = credits.Add(txn.Amount)
		}
	}

	return model.StatementBalance{
		Initial:       initial,
		TotalCredits:  credits,
		TotalDebits:   debits,
		ComputedFinal: initial.Add(credits).Sub(debits),
	}
}

// WithManualFinal returns a copy of b carrying an explicit closing
// balance. The override is used verbatim at serialization time and does
// not change the computed totals.
func WithManualFinal(b model.StatementBalance, final decimal.Decimal) model.StatementBalance {
	b.ManualFinal = &final
	return b
}
