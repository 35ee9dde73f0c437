package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a transaction as money leaving or entering the account.
type TxnType string

const (
	TypeDebit  TxnType = "DEBIT"
	TypeCredit TxnType = "CREDIT"
)

// MaxMemoLen is the OFX MEMO field limit; longer descriptions are truncated.
const MaxMemoLen = 255

// TruncateMemo caps a memo at MaxMemoLen characters. The limit counts
// runes, not bytes, so multibyte text is never cut mid-rune.
func TruncateMemo(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxMemoLen {
		return s
	}
	return string(runes[:MaxMemoLen])
}

// Transaction is a finalized statement transaction ready for serialization.
type Transaction struct {
	Date        time.Time
	RawDate     string // original source string, kept for user-facing output
	Amount      decimal.Decimal
	Description string
	Type        TxnType
	FITID       string
	SourceRow   int // 0-based position in the source row sequence
}
