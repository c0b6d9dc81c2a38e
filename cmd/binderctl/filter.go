package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peternagy/pdfbinder/internal/filefilter"
	"github.com/peternagy/pdfbinder/internal/types"
)

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter [pattern...]",
		Short: "Print the open-dialog filter string",
		Long: `Print the filter string for the given patterns, joined by "|".
Without arguments the document filters used by PDF Binder are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := filefilter.DocumentEntries()
			if len(args) > 0 {
				list := make([]types.FileFilterEntry, len(args))
				for i, p := range args {
					list[i] = types.FileFilterEntry{Pattern: p}
				}
				entries = filefilter.NewEntries(list)
			}
			fmt.Fprintln(cmd.OutOrStdout(), entries.GetFilterString())
			return nil
		},
	}
}
