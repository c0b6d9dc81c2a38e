package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/peternagy/pdfbinder/internal/appearance"
	"github.com/peternagy/pdfbinder/internal/core"
	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/filefilter"
	"github.com/peternagy/pdfbinder/internal/performance"
	"github.com/peternagy/pdfbinder/internal/platform"
	"github.com/peternagy/pdfbinder/internal/settings"
	"github.com/peternagy/pdfbinder/internal/storage"
	"github.com/peternagy/pdfbinder/internal/theme"
	"github.com/peternagy/pdfbinder/internal/types"
)

// =============================================================================
// Type Re-exports for Wails Binding Generation
// =============================================================================

type ThemeInfo = types.ThemeInfo
type ThemeColors = types.ThemeColors
type AppliedTheme = types.AppliedTheme
type AccentOptions = types.AccentOptions
type FileFilterEntry = types.FileFilterEntry
type Metrics = performance.Metrics

// =============================================================================
// App - Thin Facade for Wails Bindings
// =============================================================================

// App struct holds the application state and services
type App struct {
	state      *core.AppState
	store      *storage.Service
	settings   *settings.Manager
	appearance *appearance.Manager
	selector   *theme.Selector
	accent     theme.AccentSource
	documents  *filefilter.Entries
	metrics    *performance.Service
}

// NewApp creates a new App instance
func NewApp() *App {
	return &App{
		state:     core.NewAppState(),
		documents: filefilter.DocumentEntries(),
	}
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.state.Ctx = ctx
	a.state.Emitter = &core.WailsEventEmitter{Ctx: ctx}
	debug.Init(ctx)

	configDir := storage.InitConfigDir()
	a.state.ConfigDir = configDir

	a.initServices(storage.NewService(configDir), appearance.WailsWindowThemer{}, platform.NewSystem())
}

// initServices wires the services and re-applies the last theme. An unreadable
// settings file only resets the options; themes and the persisted selection
// are still loaded from store. If the config dir cannot be created at all the
// app runs on an in-memory store.
func (a *App) initServices(store *storage.Service, window appearance.WindowThemer, accent theme.AccentSource) {
	settingsSvc, err := settings.NewManager(store)
	if err != nil {
		debug.LogSettings("Config dir unavailable, using in-memory store", map[string]interface{}{
			"dir":   store.ConfigDir(),
			"error": err.Error(),
		})
		store = storage.NewServiceWithFs(afero.NewMemMapFs(), store.ConfigDir())
		if settingsSvc, err = settings.NewManager(store); err != nil {
			panic(fmt.Sprintf("in-memory settings: %v", err))
		}
	}

	a.store = store
	a.settings = settingsSvc
	a.accent = accent
	a.appearance = appearance.NewManager(a.state, store, window)
	a.selector = theme.NewSelector(a.state, a.settings, a.appearance, accent)
	a.metrics = performance.NewService(a.selector)

	name := a.appearance.ActiveThemeID()
	if name == "" {
		if def, ok := a.selector.DefaultTheme(); ok {
			name = def.ID
		}
	}
	if err := a.selector.ApplyTheme(a.state.Ctx, name); err != nil {
		debug.LogTheme("Could not restore theme", map[string]interface{}{
			"theme": name,
			"error": err.Error(),
		})
	}
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	debug.SetEnabled(false)
}

// SetDebugLogging toggles debug:log events for the frontend console.
func (a *App) SetDebugLogging(enabled bool) {
	debug.SetEnabled(enabled)
}

// GetMetrics returns runtime statistics for the debug panel.
func (a *App) GetMetrics() *performance.Metrics {
	return a.metrics.GetMetrics()
}
