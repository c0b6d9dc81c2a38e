// Package appearance applies themes to the running application.
package appearance

import (
	"context"
	"fmt"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/peternagy/pdfbinder/internal/core"
	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/settings"
	"github.com/peternagy/pdfbinder/internal/storage"
	"github.com/peternagy/pdfbinder/internal/types"
)

// WindowThemer switches the native window chrome between dark and light.
type WindowThemer interface {
	SetWindowTheme(ctx context.Context, dark bool)
}

// WailsWindowThemer uses the Wails runtime. It only has a visible effect on Windows.
type WailsWindowThemer struct{}

// SetWindowTheme implements WindowThemer.
func (WailsWindowThemer) SetWindowTheme(ctx context.Context, dark bool) {
	if ctx == nil {
		return
	}
	if dark {
		runtime.WindowSetDarkTheme(ctx)
	} else {
		runtime.WindowSetLightTheme(ctx)
	}
}

// NoopWindowThemer does nothing (used for tests and the CLI).
type NoopWindowThemer struct{}

// SetWindowTheme implements WindowThemer.
func (NoopWindowThemer) SetWindowTheme(context.Context, bool) {}

// Manager applies themes and remembers the last one applied.
type Manager struct {
	state  *core.AppState
	store  *storage.Service
	window WindowThemer

	mu      sync.RWMutex
	config  types.ThemeConfig
	current *types.AppliedTheme
}

// NewManager creates a Manager and loads the persisted theme config.
func NewManager(state *core.AppState, store *storage.Service, window WindowThemer) *Manager {
	if window == nil {
		window = NoopWindowThemer{}
	}
	m := &Manager{state: state, store: store, window: window}
	m.loadConfig()
	return m
}

func (m *Manager) loadConfig() {
	var cfg types.ThemeConfig
	if _, err := m.store.LoadJSON(m.store.ThemeConfigFile(), &cfg); err != nil {
		debug.LogAppearance("Ignoring unreadable theme config", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	m.config = cfg
}

// GetDefaultTheme returns the theme used when nothing else was chosen.
func (m *Manager) GetDefaultTheme() types.ThemeInfo {
	return types.ThemeInfo{ID: settings.DarkThemeID, DisplayName: "Dark", Dark: true, Builtin: true}
}

// ActiveThemeID returns the ID of the last theme applied, if any.
func (m *Manager) ActiveThemeID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveThemeID
}

// CurrentTheme returns the theme applied by this process.
func (m *Manager) CurrentTheme() (types.AppliedTheme, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return types.AppliedTheme{}, false
	}
	return *m.current, true
}

// SetTheme renders themeName from catalog with accent, persists the choice
// and notifies the frontend with a theme:changed event.
func (m *Manager) SetTheme(ctx context.Context, catalog []types.ThemeInfo, themeName string, accent types.Color) error {
	t, ok := types.FindTheme(catalog, themeName)
	if !ok {
		return &core.ThemeNotFoundError{Name: themeName}
	}

	applied := types.AppliedTheme{
		Theme:  t,
		Accent: accent,
		Colors: Palette(t.Colors, accent, t.Dark),
	}

	cfg := types.ThemeConfig{ActiveThemeID: t.ID, Accent: accent}
	if err := m.store.PersistJSON(m.store.ThemeConfigFile(), cfg); err != nil {
		return fmt.Errorf("failed to save theme config: %w", err)
	}

	m.window.SetWindowTheme(ctx, t.Dark)

	m.mu.Lock()
	m.config = cfg
	m.current = &applied
	m.mu.Unlock()

	m.state.EmitEvent("theme:changed", applied)
	debug.LogAppearance("Theme applied", map[string]interface{}{
		"theme":  t.ID,
		"accent": accent.Hex(),
	})
	return nil
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// Palette returns base with the primary colors derived from accent.
// Hover states move away from the background; muted states move toward it.
func Palette(base types.ThemeColors, accent types.Color, dark bool) types.ThemeColors {
	c := accent.Colorful()

	var hover, muted colorful.Color
	if dark {
		hover = c.BlendLab(white, 0.2)
		muted = c.BlendLab(black, 0.45)
	} else {
		hover = c.BlendLab(black, 0.15)
		muted = c.BlendLab(white, 0.6)
	}

	out := base
	out.Primary = types.FromColorful(c, 0xff).Hex()
	out.PrimaryHover = types.FromColorful(hover, 0xff).Hex()
	out.PrimaryMuted = types.FromColorful(muted, 0xff).Hex()
	return out
}
