// Package ofx renders a finalized transaction set as an OFX 1.02 SGML
// statement document.
package ofx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/model"
)

// ErrNoTransactions is returned when a statement has nothing to export.
// An empty statement is an error, never an empty-but-valid file.
var ErrNoTransactions = errors.New("no transactions to export")

// Statement is everything the serializer needs: account metadata,
// balances and the reconciled transactions.
type Statement struct {
	AccountID    string
	BankName     string
	Currency     string
	Balance      model.StatementBalance
	Transactions []model.Transaction
}

// header is the fixed OFX/SGML preamble. The first three lines are a
// bit-level contract with consuming software.
const header = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

`

// postedSuffix fixes every emitted date to midnight in the Brazilian
// timezone, regardless of the source date format.
const postedSuffix = "000000[-3:BRT]"

// escaper guards free-text values against the SGML-reserved characters.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func ofxDate(t time.Time) string {
	return t.Format("20060102") + postedSuffix
}

// Render writes the statement document. Transactions are sorted by date
// ascending, stable for same-date rows; the first and last dates become
// DTSTART and DTEND.
func Render(w io.Writer, st Statement) error {
	if len(st.Transactions) == 0 {
		return ErrNoTransactions
	}

	txns := make([]model.Transaction, len(st.Transactions))
	copy(txns, st.Transactions)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	start := txns[0].Date
	end := txns[len(txns)-1].Date

	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing OFX header: %w", err)
	}

	fmt.Fprintf(w, "<OFX>\n")
	fmt.Fprintf(w, "<SIGNONMSGSRSV1>\n")
	fmt.Fprintf(w, "<SONRS>\n")
	fmt.Fprintf(w, "<STATUS>\n")
	fmt.Fprintf(w, "<CODE>0\n")
	fmt.Fprintf(w, "<SEVERITY>INFO\n")
	fmt.Fprintf(w, "</STATUS>\n")
	fmt.Fprintf(w, "<DTSERVER>%s\n", ofxDate(end))
	fmt.Fprintf(w, "<LANGUAGE>POR\n")
	fmt.Fprintf(w, "<FI>\n")
	fmt.Fprintf(w, "<ORG>%s\n", escaper.Replace(st.BankName))
	fmt.Fprintf(w, "</FI>\n")
	fmt.Fprintf(w, "</SONRS>\n")
	fmt.Fprintf(w, "</SIGNONMSGSRSV1>\n")

	fmt.Fprintf(w, "<CREDITCARDMSGSRSV1>\n")
	fmt.Fprintf(w, "<CCSTMTTRNRS>\n")
	fmt.Fprintf(w, "<TRNUID>1\n")
	fmt.Fprintf(w, "<STATUS>\n")
	fmt.Fprintf(w, "<CODE>0\n")
	fmt.Fprintf(w, "<SEVERITY>INFO\n")
	fmt.Fprintf(w, "</STATUS>\n")
	fmt.Fprintf(w, "<CCSTMTRS>\n")
	fmt.Fprintf(w, "<CURDEF>%s\n", st.Currency)
	fmt.Fprintf(w, "<CCACCTFROM>\n")
	fmt.Fprintf(w, "<ACCTID>%s\n", st.AccountID)
	fmt.Fprintf(w, "</CCACCTFROM>\n")

	fmt.Fprintf(w, "<BANKTRANLIST>\n")
	fmt.Fprintf(w, "<DTSTART>%s\n", ofxDate(start))
	fmt.Fprintf(w, "<DTEND>%s\n", ofxDate(end))
	for _, txn := range txns {
		fmt.Fprintf(w, "<STMTTRN>\n")
		fmt.Fprintf(w, "<TRNTYPE>%s\n", txn.Type)
		fmt.Fprintf(w, "<DTPOSTED>%s\n", ofxDate(txn.Date))
		fmt.Fprintf(w, "<TRNAMT>%s\n", txn.Amount.StringFixed(2))
		fmt.Fprintf(w, "<FITID>%s\n", txn.FITID)
		fmt.Fprintf(w, "<MEMO>%s\n", escaper.Replace(txn.Description))
		fmt.Fprintf(w, "</STMTTRN>\n")
	}
	fmt.Fprintf(w, "</BANKTRANLIST>\n")

	fmt.Fprintf(w, "<LEDGERBAL>\n")
	fmt.Fprintf(w, "<BALAMT>%s\n", st.Balance.Final().StringFixed(2))
	fmt.Fprintf(w, "<DTASOF>%s\n", ofxDate(end))
	fmt.Fprintf(w, "</LEDGERBAL>\n")
	fmt.Fprintf(w, "<AVAILBAL>\n")
	fmt.Fprintf(w, "<BALAMT>%s\n", st.Balance.Initial.StringFixed(2))
	fmt.Fprintf(w, "<DTASOF>%s\n", ofxDate(start))
	fmt.Fprintf(w, "</AVAILBAL>\n")
	fmt.Fprintf(w, "</CCSTMTRS>\n")
	fmt.Fprintf(w, "</CCSTMTTRNRS>\n")
	fmt.Fprintf(w, "</CREDITCARDMSGSRSV1>\n")
	fmt.Fprintf(w, "</OFX>\n")

	return nil
}

// WriteFile renders the statement into memory and writes it to path in a
// single bounded write. On any error no file is written.
func WriteFile(path string, st Statement) error {
	var buf bytes.Buffer
	if err := Render(&buf, st); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing OFX file: %w", err)
	}
	return nil
}
