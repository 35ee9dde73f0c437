// Package fitid derives the OFX transaction identifier when the source
// file supplies none. IDs are content-derived so re-exporting the same
// statement reproduces the same FITID for every logical transaction.
package fitid

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/normalize"
)

// namespace scopes generated IDs to this converter's URL space.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://csv2ofx.invalid/fitid"))

// New returns a deterministic FITID for a transaction. The payload is the
// date in compact YYYYMMDD form (time/timezone suffixes stripped), the
// amount fixed at two decimal places, the memo lowercased, trimmed and
// truncated to the stored 255-character limit, the account id and a
// disambiguator for otherwise-identical transactions. Any single
// differing input yields a different identifier.
func New(rawDate string, amount decimal.Decimal, memo, accountID string, disambiguator int) string {
	m := model.TruncateMemo(strings.ToLower(strings.TrimSpace(memo)))

	payload := strings.Join([]string{
		normalize.DateKey(rawDate),
		amount.StringFixed(2),
		m,
		accountID,
		strconv.Itoa(disambiguator),
	}, "|")

	return uuid.NewSHA1(namespace, []byte(payload)).String()
}
