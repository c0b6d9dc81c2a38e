package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/peternagy/pdfbinder/internal/types"
)

var (
	activeStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func newThemesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List and apply themes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.open()
			if err != nil {
				return err
			}
			active := svc.appearance.ActiveThemeID()
			for _, t := range svc.selector.ListOfThemes() {
				fmt.Fprintln(cmd.OutOrStdout(), formatThemeLine(t, t.ID == active))
			}
			return nil
		},
	}

	apply := &cobra.Command{
		Use:   "apply <name>",
		Short: "Apply a theme by ID or display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New("theme name must not be empty")
			}
			svc, err := e.open()
			if err != nil {
				return err
			}
			if err := svc.selector.ApplyTheme(cmd.Context(), args[0]); err != nil {
				return err
			}
			current, ok := svc.appearance.CurrentTheme()
			if !ok {
				return fmt.Errorf("theme %q was not applied", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied theme %s (accent %s)\n", current.Theme.DisplayName, current.Accent.Hex())
			return nil
		},
	}

	cmd.AddCommand(list, apply)
	return cmd
}

func formatThemeLine(t types.ThemeInfo, active bool) string {
	marker := " "
	name := t.DisplayName
	if active {
		marker = "*"
		name = activeStyle.Render(name)
	}

	kind := "light"
	if t.Dark {
		kind = "dark"
	}
	origin := "user"
	if t.Builtin {
		origin = "builtin"
	}
	return fmt.Sprintf("%s %s %-36s %s %s", marker, swatch(t.Colors.Background), t.ID, name,
		dimStyle.Render(fmt.Sprintf("(%s, %s)", kind, origin)))
}
