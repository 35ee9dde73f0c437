package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/convert"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/logging"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/profile"
	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/reconcile"
)

func newConvertCommand() *cobra.Command {
	var profilePath string
	var outPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "convert <input.csv>",
		Short: "Convert a CSV statement into an OFX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := profile.Load(profilePath)
			if err != nil {
				return err
			}

			input := args[0]
			if outPath == "" {
				outPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".ofx"
			}

			log := logging.New(verbose)
			res, err := convert.Run(log, prof, input, outPath)
			if err != nil {
				return err
			}

			printStats(cmd.OutOrStdout(), res.Stats)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s\n", len(res.Transactions), res.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", profileFileName, "conversion profile file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output OFX path (default: input with .ofx extension)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every row decision")

	return cmd
}

func printStats(w io.Writer, stats reconcile.Stats) {
	fmt.Fprintf(w, "Rows:            %d\n", stats.TotalRows)
	fmt.Fprintf(w, "Processed:       %d\n", stats.Processed)
	fmt.Fprintf(w, "Excluded:        %d\n", stats.Excluded)
	fmt.Fprintf(w, "Adjusted:        %d\n", stats.Adjusted)
	fmt.Fprintf(w, "Kept past range: %d\n", stats.KeptOutOfRange)
	fmt.Fprintf(w, "Deleted by user: %d\n", stats.Deleted)
}
