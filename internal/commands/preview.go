package commands

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/convert"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/logging"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/profile"
)

func newPreviewCommand() *cobra.Command {
	var profilePath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "preview <input.csv>",
		Short: "Reconcile a CSV statement and show the result without writing a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := profile.Load(profilePath)
			if err != nil {
				return err
			}

			log := logging.New(verbose)
			res, err := convert.Preview(log, prof, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cur := prof.Account.Currency
			for _, txn := range res.Transactions {
				fmt.Fprintf(out, "%s  %-6s  %12s  %s\n",
					txn.Date.Format("2006-01-02"), txn.Type, displayMoney(txn.Amount, cur), txn.Description)
			}

			fmt.Fprintln(out)
			printStats(out, res.Stats)
			fmt.Fprintf(out, "Initial balance: %s\n", displayMoney(res.Balance.Initial, cur))
			fmt.Fprintf(out, "Total credits:   %s\n", displayMoney(res.Balance.TotalCredits, cur))
			fmt.Fprintf(out, "Total debits:    %s\n", displayMoney(res.Balance.TotalDebits, cur))
			fmt.Fprintf(out, "Final balance:   %s\n", displayMoney(res.Balance.Final(), cur))
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", profileFileName, "conversion profile file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every row decision")

	return cmd
}

// displayMoney renders an amount with the currency's own symbol and
// grouping rules.
func displayMoney(d decimal.Decimal, currency string) string {
	return money.New(d.Shift(2).IntPart(), currency).Display()
}
