// Package convert orchestrates a full conversion: profile + CSV file in,
// OFX statement file and run statistics out. Preview runs the identical
// pipeline without writing, so previewed numbers always match the final
// file.
package convert

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/balance"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/csvsource"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/ofx"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/profile"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/reconcile"
)

// Result reports what one run produced.
type Result struct {
	Transactions []model.Transaction
	Stats        reconcile.Stats
	Balance      model.StatementBalance
	OutputPath   string // empty for previews
}

// Preview reconciles the source file without writing anything.
func Preview(log zerolog.Logger, prof *profile.Profile, csvPath string) (Result, error) {
	// Configuration problems abort before any row is processed.
	cfg, err := buildConfig(prof)
	if err != nil {
		return Result{}, err
	}
	initial, err := prof.InitialBalance()
	if err != nil {
		return Result{}, err
	}
	manualFinal, err := prof.ManualFinal()
	if err != nil {
		return Result{}, err
	}

	rows, err := csvsource.ReadFile(csvPath, prof.Delimiter())
	if err != nil {
		return Result{}, err
	}

	txns, stats, results := reconcile.Run(rows, cfg)
	for _, r := range results {
		ev := log.Debug().Int("row", r.Row).Str("outcome", string(r.Outcome))
		if r.Err != nil {
			ev = ev.Err(r.Err)
		}
		ev.Msg("row reconciled")
	}
	log.Info().
		Int("total", stats.TotalRows).
		Int("processed", stats.Processed).
		Int("excluded", stats.Excluded).
		Int("adjusted", stats.Adjusted).
		Int("kept_out_of_range", stats.KeptOutOfRange).
		Int("deleted", stats.Deleted).
		Msg("reconciliation finished")

	bal := balance.Summarize(txns, initial)
	if manualFinal != nil {
		bal = balance.WithManualFinal(bal, *manualFinal)
	}

	return Result{Transactions: txns, Stats: stats, Balance: bal}, nil
}

// Run converts the source file and writes the OFX statement to outPath.
// When zero transactions survive reconciliation no file is written.
func Run(log zerolog.Logger, prof *profile.Profile, csvPath, outPath string) (Result, error) {
	res, err := Preview(log, prof, csvPath)
	if err != nil {
		return Result{}, err
	}

	st := ofx.Statement{
		AccountID:    prof.Account.ID,
		BankName:     prof.Account.Bank,
		Currency:     prof.Account.Currency,
		Balance:      res.Balance,
		Transactions: res.Transactions,
	}
	if err := ofx.WriteFile(outPath, st); err != nil {
		return Result{}, err
	}

	res.OutputPath = outPath
	log.Info().Str("path", outPath).Int("transactions", len(res.Transactions)).Msg("OFX statement written")
	return res, nil
}

func buildConfig(prof *profile.Profile) (reconcile.Config, error) {
	period, err := prof.PeriodRange()
	if err != nil {
		return reconcile.Config{}, fmt.Errorf("configuring statement period: %w", err)
	}
	decisions, err := prof.DecisionMap()
	if err != nil {
		return reconcile.Config{}, fmt.Errorf("configuring review decisions: %w", err)
	}
	return reconcile.Config{
		Builder:   prof.BuilderSpec(),
		Deleted:   prof.DeletedSet(),
		Decisions: decisions,
		Period:    period,
	}, nil
}
