// Package txbuilder composes statement transactions from normalized
// source rows according to a column mapping.
package txbuilder

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/fitid"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/normalize"
)

// DefaultDescription is used when no mapped column yields any text.
const DefaultDescription = "Transaction"

// DescriptionSpec selects either a single memo column or a composite of
// several columns joined by a separator.
type DescriptionSpec struct {
	Column           string
	CompositeColumns []string
	Separator        string
	UseComposite     bool
}

// Spec is the immutable column-to-field mapping and dialect for one run.
type Spec struct {
	DateColumn       string
	AmountColumn     string
	Description      DescriptionSpec
	TypeColumn       string // optional; DEBIT/CREDIT when present
	IDColumn         string // optional external transaction id
	DecimalSeparator string
	InvertValues     bool
	AccountID        string
}

// Builder turns rows into transactions. It keeps a per-run occurrence
// count of identical date/amount/memo triples so duplicated source rows
// still receive distinct fallback identifiers.
type Builder struct {
	spec Spec
	seen map[string]int
}

// NewBuilder creates a Builder for one conversion run.
func NewBuilder(spec Spec) *Builder {
	return &Builder{spec: spec, seen: make(map[string]int)}
}

// Build assembles a transaction from a row. Amount and date failures
// return a *normalize.ParseError; the caller decides whether that skips
// the row or aborts.
func (b *Builder) Build(row model.Row) (model.Transaction, error) {
	rawDate := row.GetTrimmed(b.spec.DateColumn)
	date, err := normalize.Date(rawDate)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := normalize.Amount(row.Get(b.spec.AmountColumn), b.spec.DecimalSeparator)
	if err != nil {
		return model.Transaction{}, err
	}
	if b.spec.InvertValues {
		amount = amount.Neg()
	}

	desc := model.TruncateMemo(Description(row, b.spec.Description))

	typ := InferType(row.GetTrimmed(b.spec.TypeColumn), amount)
	amount = alignSign(typ, amount)

	id := ""
	if b.spec.IDColumn != "" {
		id = row.GetTrimmed(b.spec.IDColumn)
	}
	if id == "" {
		id = fitid.New(rawDate, amount, desc, b.spec.AccountID, b.nextDisambiguator(rawDate, amount, desc))
	}

	return model.Transaction{
		Date:        date,
		RawDate:     rawDate,
		Amount:      amount,
		Description: desc,
		Type:        typ,
		FITID:       id,
		SourceRow:   row.Index,
	}, nil
}

// Description builds the transaction memo. Composite mode joins the
// trimmed values of the selected columns, skipping unselected (empty
// name) and blank columns; single mode returns the mapped column as-is.
// Either way an empty result falls back to DefaultDescription.
func Description(row model.Row, spec DescriptionSpec) string {
	if spec.UseComposite {
		var parts []string
		for _, col := range spec.CompositeColumns {
			if col == "" {
				continue
			}
			if v := row.GetTrimmed(col); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			return DefaultDescription
		}
		return strings.Join(parts, spec.Separator)
	}

	if v := row.Get(spec.Column); strings.TrimSpace(v) != "" {
		return v
	}
	return DefaultDescription
}

// InferType uses the mapped type column when it names DEBIT or CREDIT
// (case-insensitively); otherwise the amount sign decides: negative is a
// debit, zero or positive a credit.
func InferType(explicit string, amount decimal.Decimal) model.TxnType {
	switch {
	case strings.EqualFold(explicit, string(model.TypeDebit)):
		return model.TypeDebit
	case strings.EqualFold(explicit, string(model.TypeCredit)):
		return model.TypeCredit
	case amount.IsNegative():
		return model.TypeDebit
	default:
		return model.TypeCredit
	}
}

// alignSign corrects the amount so a credit is never negative and a
// debit never positive. Mismatches are corrected, not rejected.
func alignSign(typ model.TxnType, amount decimal.Decimal) decimal.Decimal {
	switch typ {
	case model.TypeCredit:
		if amount.IsNegative() {
			return amount.Abs()
		}
	case model.TypeDebit:
		if amount.IsPositive() {
			return amount.Neg()
		}
	}
	return amount
}

func (b *Builder) nextDisambiguator(rawDate string, amount decimal.Decimal, memo string) int {
	key := strings.Join([]string{
		normalize.DateKey(rawDate),
		amount.StringFixed(2),
		strings.ToLower(strings.TrimSpace(memo)),
	}, "|")
	n := b.seen[key]
	b.seen[key] = n + 1
	return n
}
