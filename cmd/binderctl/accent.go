package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peternagy/pdfbinder/internal/theme"
	"github.com/peternagy/pdfbinder/internal/types"
)

func newAccentCmd(e *env) *cobra.Command {
	var set string
	var useSystem bool

	cmd := &cobra.Command{
		Use:   "accent",
		Short: "Show or change the accent color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.open()
			if err != nil {
				return err
			}

			if set != "" || useSystem {
				opts, err := svc.settings.AccentOptions()
				if err != nil {
					return err
				}
				if set != "" {
					c, err := types.ParseColor(set)
					if err != nil {
						return err
					}
					opts.AccentColor = c
					opts.ApplyWindowsDefaultAccent = false
				}
				if useSystem {
					opts.ApplyWindowsDefaultAccent = true
				}
				if err := svc.settings.SetAccentOptions(opts); err != nil {
					return err
				}
			}

			c, err := theme.GetCurrentAccentColor(svc.settings, e.accent)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch(c.Hex()), c.Hex())
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "store a fixed accent color (#RRGGBB or #AARRGGBB)")
	cmd.Flags().BoolVar(&useSystem, "system", false, "follow the system accent color")
	cmd.MarkFlagsMutuallyExclusive("set", "system")
	return cmd
}
