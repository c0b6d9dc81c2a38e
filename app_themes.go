package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/peternagy/pdfbinder/internal/theme"
	"github.com/peternagy/pdfbinder/internal/types"
)

// =============================================================================
// Theme Methods — Thin Facade for Wails Bindings
// =============================================================================

// GetThemes returns all available themes (builtin + user).
func (a *App) GetThemes() []types.ThemeInfo {
	return a.selector.ListOfThemes()
}

// GetDefaultTheme returns the default theme, or nil if the catalog lacks it.
func (a *App) GetDefaultTheme() *types.ThemeInfo {
	t, ok := a.selector.DefaultTheme()
	if !ok {
		return nil
	}
	return &t
}

// GetSelectedTheme returns the selected theme, or nil if none is selected.
func (a *App) GetSelectedTheme() *types.ThemeInfo {
	t, ok := a.selector.SelectedTheme()
	if !ok {
		return nil
	}
	return &t
}

// GetCurrentTheme returns the rendered theme with its palette, or nil.
func (a *App) GetCurrentTheme() *types.AppliedTheme {
	t, ok := a.appearance.CurrentTheme()
	if !ok {
		return nil
	}
	return &t
}

// IsThemeSelectionEnabled reports whether the theme picker should be enabled.
func (a *App) IsThemeSelectionEnabled() bool {
	return a.selector.IsEnabled()
}

// ApplyTheme switches to the theme with the given ID or display name.
func (a *App) ApplyTheme(themeName string) error {
	return a.selector.ApplyTheme(a.state.Ctx, themeName)
}

// GetAccentColor returns the accent color that applying a theme would use.
func (a *App) GetAccentColor() (string, error) {
	c, err := theme.GetCurrentAccentColor(a.settings, a.accent)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// GetAccentOptions returns the stored accent options.
func (a *App) GetAccentOptions() (types.AccentOptions, error) {
	return a.settings.AccentOptions()
}

// SetAccentOptions stores the accent options and re-applies the selected theme.
func (a *App) SetAccentOptions(opts types.AccentOptions) error {
	if err := a.settings.SetAccentOptions(opts); err != nil {
		return err
	}
	if t, ok := a.selector.SelectedTheme(); ok {
		return a.selector.ApplyTheme(a.state.Ctx, t.ID)
	}
	return nil
}

// ReloadThemes rescans the user themes directory.
func (a *App) ReloadThemes() {
	a.settings.ReloadThemes()
	a.selector.Refresh()
}

// GetThemesDir returns the path to the user themes directory.
func (a *App) GetThemesDir() string {
	return a.store.ThemesDir()
}

// OpenThemesDir opens the themes directory in the OS file manager.
func (a *App) OpenThemesDir() error {
	if err := a.store.EnsureDirs(); err != nil {
		return err
	}

	dir := a.store.ThemesDir()
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "linux":
		cmd = exec.Command("xdg-open", dir)
	case "windows":
		cmd = exec.Command("explorer", dir)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
