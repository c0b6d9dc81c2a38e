package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peternagy/pdfbinder/internal/appearance"
	"github.com/peternagy/pdfbinder/internal/core"
	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/storage"
	"github.com/peternagy/pdfbinder/internal/types"
)

type staticAccent struct {
	color types.Color
	err   error
}

func (s staticAccent) WindowGlassColor() (types.Color, error) {
	return s.color, s.err
}

// Helper function to create an App wired to an in-memory config dir
func newTestApp(t *testing.T, fs afero.Fs) (*App, *core.RecordingEventEmitter) {
	t.Helper()
	app := NewApp()
	state, rec := core.NewTestState()
	app.state = state
	app.initServices(storage.NewServiceWithFs(fs, "/config/pdfbinder"), appearance.NoopWindowThemer{}, staticAccent{err: errors.New("unavailable")})
	return app, rec
}

func TestStartupAppliesDefaultTheme(t *testing.T) {
	app, rec := newTestApp(t, afero.NewMemMapFs())

	selected := app.GetSelectedTheme()
	require.NotNil(t, selected)
	assert.Equal(t, "dark", selected.ID)
	assert.Equal(t, selected, app.GetDefaultTheme())
	assert.True(t, app.IsThemeSelectionEnabled())

	current := app.GetCurrentTheme()
	require.NotNil(t, current)
	assert.Equal(t, types.RGB(0x1b, 0xa1, 0xe2), current.Accent)
	assert.Len(t, rec.Named("theme:changed"), 1)
	assert.Equal(t, 1, app.GetMetrics().ThemeChanges)
}

func TestStartupRestoresPersistedTheme(t *testing.T) {
	fs := afero.NewMemMapFs()
	first, _ := newTestApp(t, fs)
	require.NoError(t, first.ApplyTheme("Light"))

	second, _ := newTestApp(t, fs)
	selected := second.GetSelectedTheme()
	require.NotNil(t, selected)
	assert.Equal(t, "light", selected.ID)
}

func TestStartupWithCorruptSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config/pdfbinder/settings.json", []byte("{oops"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/config/pdfbinder/themes/sepia.json", []byte(`{"id":"sepia","name":"Sepia"}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/config/pdfbinder/theme_config.json", []byte(`{"activeThemeId":"light"}`), 0644))

	app, _ := newTestApp(t, fs)
	assert.Len(t, app.GetThemes(), 3, "user themes must survive a bad settings file")
	selected := app.GetSelectedTheme()
	require.NotNil(t, selected)
	assert.Equal(t, "light", selected.ID)

	accent, err := app.GetAccentColor()
	require.NoError(t, err)
	assert.Equal(t, "#1BA1E2", accent)

	require.NoError(t, app.ApplyTheme("Dark"))
	data, err := afero.ReadFile(fs, "/config/pdfbinder/theme_config.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"activeThemeId": "dark"`)
}

func TestApplyUnknownThemeKeepsSelection(t *testing.T) {
	app, _ := newTestApp(t, afero.NewMemMapFs())

	err := app.ApplyTheme("Unknown")
	var applyErr *core.AppearanceApplyError
	require.True(t, errors.As(err, &applyErr))

	var notFound *core.ThemeNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "dark", app.GetSelectedTheme().ID)
	assert.True(t, app.IsThemeSelectionEnabled())
}

func TestAccentOptions(t *testing.T) {
	app, _ := newTestApp(t, afero.NewMemMapFs())

	accent, err := app.GetAccentColor()
	require.NoError(t, err)
	assert.Equal(t, "#1BA1E2", accent)

	green := types.RGB(0x22, 0xaa, 0x44)
	require.NoError(t, app.SetAccentOptions(types.AccentOptions{AccentColor: green}))

	accent, err = app.GetAccentColor()
	require.NoError(t, err)
	assert.Equal(t, "#22AA44", accent)
	assert.Equal(t, green, app.GetCurrentTheme().Accent)

	opts, err := app.GetAccentOptions()
	require.NoError(t, err)
	assert.False(t, opts.ApplyWindowsDefaultAccent)
}

func TestReloadThemes(t *testing.T) {
	fs := afero.NewMemMapFs()
	app, _ := newTestApp(t, fs)
	initial := len(app.GetThemes())

	theme := `{"name": "Sepia", "dark": false, "sources": ["themes/sepia.css"]}`
	require.NoError(t, afero.WriteFile(fs, filepath.Join(app.GetThemesDir(), "sepia.json"), []byte(theme), 0644))

	app.ReloadThemes()
	assert.Len(t, app.GetThemes(), initial+1)
	require.NoError(t, app.ApplyTheme("Sepia"))
	assert.Equal(t, "Sepia", app.GetSelectedTheme().DisplayName)
}

func TestDocumentFilters(t *testing.T) {
	app := NewApp()
	assert.Equal(t, "*.pdf|*.*", app.GetDocumentFilterString())
	require.Len(t, app.GetDocumentFilters(), 2)
	assert.Equal(t, "*.pdf", app.GetDocumentFilters()[0].Pattern)
}

func TestShutdownDisablesDebugLogging(t *testing.T) {
	app := NewApp()
	app.SetDebugLogging(true)
	app.shutdown(context.Background())
	assert.False(t, debug.IsEnabled())
}
