package main

import (
	"os"

	"github.com/andrebarsotti/csv-to-ofx-converter-sub000/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
