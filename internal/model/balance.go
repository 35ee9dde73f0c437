package model

import "github.com/shopspring/decimal"

// StatementBalance aggregates a statement's credit/debit totals and
// the closing balance derived from the initial one.
type StatementBalance struct {
	Initial       decimal.Decimal
	TotalCredits  decimal.Decimal
	TotalDebits   decimal.Decimal
	ComputedFinal decimal.Decimal // Initial + TotalCredits - TotalDebits

	// ManualFinal, when set, is used verbatim as the closing balance.
	// It never changes the credit/debit totals.
	ManualFinal *decimal.Decimal
}

// Final returns the closing balance: the manual override when supplied,
// otherwise the computed one.
func (b StatementBalance) Final() decimal.Decimal {
	if b.ManualFinal != nil {
		return *b.ManualFinal
	}
	return b.ComputedFinal
}
