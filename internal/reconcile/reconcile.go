// Package reconcile runs the per-row decision pipeline: user exclusion,
// field normalization and the statement-period date policy. The same
// entry point backs both the preview and the final conversion so the two
// always agree.
package reconcile

import (
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/daterange"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/txbuilder"
)

// Outcome is the terminal bucket a source row lands in. Every row lands
// in exactly one.
type Outcome string

const (
	OutcomeIncluded       Outcome = "included"
	OutcomeExcludedByUser Outcome = "excluded-by-user"
	OutcomeExcludedByDate Outcome = "excluded-by-date-policy"
	OutcomeAdjusted       Outcome = "adjusted"
	OutcomeKeptOutOfRange Outcome = "kept-out-of-range"
	OutcomeParseFailed    Outcome = "parse-failed"
)

// Config is the immutable input for one reconciliation run. The engine
// never mutates it.
type Config struct {
	Builder   txbuilder.Spec
	Deleted   map[int]bool           // user-excluded row indices
	Decisions map[int]model.Decision // explicit per-row choices for out-of-range dates
	Period    *daterange.Range       // nil disables date-range validation
}

// Stats summarizes a run. Processed + Excluded always equals TotalRows;
// Adjusted and KeptOutOfRange count subsets of Processed.
type Stats struct {
	TotalRows      int
	Processed      int
	Excluded       int
	Adjusted       int
	KeptOutOfRange int
	Deleted        int
}

// RowResult records what happened to one source row, for logging and
// user-facing summaries.
type RowResult struct {
	Row     int
	Outcome Outcome
	Err     error // set only for parse failures
}

// Run reconciles rows into finalized transactions. Parse failures are
// absorbed per row; the run itself never fails.
func Run(rows []model.Row, cfg Config) ([]model.Transaction, Stats, []RowResult) {
	builder := txbuilder.NewBuilder(cfg.Builder)

	stats := Stats{TotalRows: len(rows), Deleted: len(cfg.Deleted)}
	var txns []model.Transaction
	results := make([]RowResult, 0, len(rows))

	for _, row := range rows {
		txn, outcome, err := resolveRow(builder, row, cfg)
		results = append(results, RowResult{Row: row.Index, Outcome: outcome, Err: err})

		switch outcome {
		case OutcomeExcludedByUser, OutcomeExcludedByDate, OutcomeParseFailed:
			stats.Excluded++
			continue
		case OutcomeAdjusted:
			stats.Adjusted++
		case OutcomeKeptOutOfRange:
			stats.KeptOutOfRange++
		}

		stats.Processed++
		txns = append(txns, txn)
	}

	return txns, stats, results
}

func resolveRow(builder *txbuilder.Builder, row model.Row, cfg Config) (model.Transaction, Outcome, error) {
	if cfg.Deleted[row.Index] {
		return model.Transaction{}, OutcomeExcludedByUser, nil
	}

	txn, err := builder.Build(row)
	if err != nil {
		return model.Transaction{}, OutcomeParseFailed, err
	}

	if cfg.Period == nil {
		return txn, OutcomeIncluded, nil
	}

	pos := cfg.Period.Classify(txn.Date)
	if pos == daterange.Within {
		return txn, OutcomeIncluded, nil
	}

	if decision, ok := cfg.Decisions[row.Index]; ok {
		switch decision {
		case model.DecisionKeep:
			return txn, OutcomeKeptOutOfRange, nil
		case model.DecisionAdjust:
			txn.Date = cfg.Period.Snap(txn.Date)
			return txn, OutcomeAdjusted, nil
		case model.DecisionExclude:
			return model.Transaction{}, OutcomeExcludedByDate, nil
		}
	}

	// Default policy: early dates are snapped forward to the statement
	// start; late dates are kept as-is so pending or late-clearing
	// transactions are not silently dropped.
	if pos == daterange.Before {
		txn.Date = cfg.Period.Snap(txn.Date)
		return txn, OutcomeAdjusted, nil
	}
	return txn, OutcomeKeptOutOfRange, nil
}
