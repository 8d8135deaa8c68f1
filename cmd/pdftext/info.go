// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftext/internal/pdfinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Print PDF metadata: page count, version, and Info dictionary",
	Long: `Info validates each PDF and prints its page count, header version,
encryption flag, and Info-dictionary fields (title, author, creator,
producer, dates). Files that cannot be parsed are reported inline and
never abort the run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		info, err := pdfinfo.Read(path)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", path, err)
			continue
		}
		pdfinfo.Fprint(os.Stdout, info)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
