package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "csv2ofx",
		Short:   "Convert bank CSV statements into OFX files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newPreviewCommand())

	return rootCmd
}
