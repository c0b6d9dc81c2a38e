// Package theme tracks the theme chosen in the UI and applies theme changes.
package theme

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/peternagy/pdfbinder/internal/core"
	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/settings"
	"github.com/peternagy/pdfbinder/internal/types"
)

// FallbackAccentColor replaces system accents that are unset, black or transparent.
var FallbackAccentColor = types.RGB(0x1b, 0xa1, 0xe2)

// Settings provides the theme catalog and typed options.
type Settings interface {
	settings.OptionGetter
	Themes() []types.ThemeInfo
}

// Appearance renders themes.
type Appearance interface {
	GetDefaultTheme() types.ThemeInfo
	SetTheme(ctx context.Context, catalog []types.ThemeInfo, themeName string, accent types.Color) error
}

// AccentSource reads the OS window/glass color.
type AccentSource interface {
	WindowGlassColor() (types.Color, error)
}

// Property names a Selector field that subscribers can watch.
type Property string

const (
	PropertySelectedTheme Property = "SelectedTheme"
	PropertyIsEnabled     Property = "IsEnabled"
	PropertyListOfThemes  Property = "ListOfThemes"
)

// PropertyChange is delivered to subscribers and to the frontend
// as a theme:property-changed event.
type PropertyChange struct {
	Property Property    `json:"property"`
	Value    interface{} `json:"value"`
}

// Selector holds the theme table, the default and selected themes, and
// whether a theme change may be started.
type Selector struct {
	state      *core.AppState
	settings   Settings
	appearance Appearance
	platform   AccentSource

	busy atomic.Bool

	mu           sync.RWMutex
	themes       map[string]types.ThemeInfo // by ID
	order        []string
	defaultTheme *types.ThemeInfo
	selected     *types.ThemeInfo

	subMu   sync.Mutex
	subs    map[Property]map[int]func(PropertyChange)
	nextSub int
}

// NewSelector builds the theme table from the settings catalog and selects
// the appearance default, if the catalog contains it.
func NewSelector(state *core.AppState, s Settings, a Appearance, platform AccentSource) *Selector {
	sel := &Selector{
		state:      state,
		settings:   s,
		appearance: a,
		platform:   platform,
		subs:       make(map[Property]map[int]func(PropertyChange)),
	}
	sel.buildTable(s.Themes())

	def := a.GetDefaultTheme()
	if t, ok := sel.lookup(def.ID); ok {
		sel.defaultTheme = &t
	} else if t, ok := sel.lookup(def.DisplayName); ok {
		sel.defaultTheme = &t
	}
	sel.selected = sel.defaultTheme
	return sel
}

func (s *Selector) buildTable(catalog []types.ThemeInfo) {
	s.themes = make(map[string]types.ThemeInfo, len(catalog))
	s.order = s.order[:0]
	for _, t := range catalog {
		if _, dup := s.themes[t.ID]; dup {
			continue
		}
		s.themes[t.ID] = t
		s.order = append(s.order, t.ID)
	}
}

// lookup resolves name by ID, then by display name. Callers hold mu or
// are still constructing the Selector.
func (s *Selector) lookup(name string) (types.ThemeInfo, bool) {
	if name == "" {
		return types.ThemeInfo{}, false
	}
	if t, ok := s.themes[name]; ok {
		return t, true
	}
	for _, id := range s.order {
		if t := s.themes[id]; t.DisplayName == name {
			return t, true
		}
	}
	return types.ThemeInfo{}, false
}

// DefaultTheme returns the theme to use when nothing else is available.
func (s *Selector) DefaultTheme() (types.ThemeInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.defaultTheme == nil {
		return types.ThemeInfo{}, false
	}
	return *s.defaultTheme, true
}

// ListOfThemes returns the themes in catalog order.
func (s *Selector) ListOfThemes() []types.ThemeInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ThemeInfo, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.themes[id])
	}
	return out
}

// SelectedTheme returns the current selection, which starts as the default.
func (s *Selector) SelectedTheme() (types.ThemeInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return types.ThemeInfo{}, false
	}
	return *s.selected, true
}

// IsEnabled reports whether a theme change may be started. The UI should
// disable theme pickers while it is false.
func (s *Selector) IsEnabled() bool {
	return !s.busy.Load()
}

// ApplyTheme asks the appearance service to render themeName and updates
// the selection. An empty name is a no-op. The selection is cleared when
// the name is not in the table, and left alone when applying fails.
// IsEnabled is false for the duration of the call and true afterwards.
func (s *Selector) ApplyTheme(ctx context.Context, themeName string) (err error) {
	if themeName == "" {
		return nil
	}
	if !s.busy.CompareAndSwap(false, true) {
		return core.ErrThemeChangeInProgress
	}
	s.notify(PropertyIsEnabled, false)

	defer func() {
		if r := recover(); r != nil {
			err = &core.AppearanceApplyError{Theme: themeName, Err: fmt.Errorf("panic: %v", r)}
		}
		// Notify before releasing so the next call's false follows this true.
		s.notify(PropertyIsEnabled, true)
		s.busy.Store(false)
		if err != nil {
			debug.LogTheme("Theme change failed", map[string]interface{}{
				"theme": themeName,
				"error": err.Error(),
			})
		}
	}()

	accent, err := GetCurrentAccentColor(s.settings, s.platform)
	if err != nil {
		return &core.AppearanceApplyError{Theme: themeName, Err: err}
	}

	if err := s.appearance.SetTheme(ctx, s.settings.Themes(), themeName, accent); err != nil {
		return &core.AppearanceApplyError{Theme: themeName, Err: err}
	}

	s.mu.RLock()
	t, ok := s.lookup(themeName)
	s.mu.RUnlock()
	if ok {
		s.setSelected(&t)
	} else {
		s.setSelected(nil)
	}
	return nil
}

// Refresh rebuilds the table from the settings catalog. The selection is
// kept if its ID is still present and cleared otherwise.
func (s *Selector) Refresh() {
	catalog := s.settings.Themes()

	s.mu.Lock()
	s.buildTable(catalog)
	if s.defaultTheme != nil {
		if t, ok := s.themes[s.defaultTheme.ID]; ok {
			s.defaultTheme = &t
		} else {
			s.defaultTheme = nil
		}
	}
	selected := s.selected
	s.mu.Unlock()

	s.notify(PropertyListOfThemes, s.ListOfThemes())

	if selected == nil {
		return
	}
	s.mu.RLock()
	t, ok := s.themes[selected.ID]
	s.mu.RUnlock()
	if ok {
		s.setSelected(&t)
	} else {
		s.setSelected(nil)
	}
}

func (s *Selector) setSelected(t *types.ThemeInfo) {
	s.mu.Lock()
	prev := s.selected
	s.selected = t
	s.mu.Unlock()

	if sameTheme(prev, t) {
		return
	}
	if t == nil {
		s.notify(PropertySelectedTheme, nil)
	} else {
		s.notify(PropertySelectedTheme, *t)
	}
}

func sameTheme(a, b *types.ThemeInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// Subscribe registers fn for changes to prop and returns a function that
// removes the subscription.
func (s *Selector) Subscribe(prop Property, fn func(PropertyChange)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	if s.subs[prop] == nil {
		s.subs[prop] = make(map[int]func(PropertyChange))
	}
	s.subs[prop][id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs[prop], id)
	}
}

func (s *Selector) notify(prop Property, value interface{}) {
	change := PropertyChange{Property: prop, Value: value}

	s.subMu.Lock()
	fns := make([]func(PropertyChange), 0, len(s.subs[prop]))
	for _, fn := range s.subs[prop] {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
	s.state.EmitEvent("theme:property-changed", change)
}

// GetCurrentAccentColor resolves the accent color from the Appearance options.
// With ApplyWindowsDefaultAccent set, the OS window color is used; a failed
// read, or a color that is unset, black or fully transparent, falls back to
// FallbackAccentColor. Otherwise the stored AccentColor is returned as is.
func GetCurrentAccentColor(opts settings.OptionGetter, platform AccentSource) (types.Color, error) {
	useSystem, err := settings.GetOptionValue[bool](opts, settings.SectionAppearance, settings.KeyApplyWindowsDefaultAccent)
	if err != nil {
		return types.Color{}, err
	}
	if !useSystem {
		return settings.GetOptionValue[types.Color](opts, settings.SectionAppearance, settings.KeyAccentColor)
	}

	var accent types.Color
	if platform != nil {
		c, err := platform.WindowGlassColor()
		if err == nil {
			accent = c
		} else {
			debug.LogTheme("System accent unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if accent.IsZero() || accent == types.Black || accent.A == 0 {
		accent = FallbackAccentColor
	}
	return accent, nil
}
