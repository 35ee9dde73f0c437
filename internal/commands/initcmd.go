package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// profileFileName is the default conversion profile file.
const profileFileName = "csv2ofx.yaml"

// starterProfile is the commented template written by init. It must stay
// loadable by profile.Load.
const starterProfile = `# csv2ofx conversion profile
source:
  delimiter: ";"          # CSV field delimiter
  decimal_separator: ","  # "," for 1.234,56 or "." for 1,234.56
  invert_values: false    # flip amount signs (debits exported as positive)

mapping:
  date: Data
  amount: Valor
  description: Descricao
  # For a description built from several columns instead:
  # use_composite: true
  # description_columns: [Estabelecimento, Cidade]
  # description_separator: " - "
  # type: Tipo            # optional DEBIT/CREDIT column
  # id: Identificador     # optional external transaction id column

account:
  id: "00000"
  bank: Banco
  currency: BRL

balance:
  initial: "0.00"
  # final: "123.45"       # explicit closing balance, if the bank states one

# Restrict transactions to the statement period. Rows dated before the
# period are moved to its start; rows after it keep their own date.
period:
  enabled: false
  # start: 2025-01-01
  # end: 2025-01-31

# Per-row review choices, keyed by 0-based data row index (the first
# data row after the header is row 0).
review: {}
  # deleted_rows: [3, 7]
  # decisions:
  #   12: adjust          # keep | adjust | exclude
`

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter conversion profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, profileFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterProfile), 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter profile to %s\n", path)
	return nil
}
