// Package settings provides the theme catalog and the persisted options store.
package settings

import (
	"sort"

	"github.com/google/uuid"

	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/types"
)

// Builtin theme IDs.
const (
	DarkThemeID  = "dark"
	LightThemeID = "light"
)

// themeNamespace seeds the IDs generated for user themes that lack one.
var themeNamespace = uuid.MustParse("6f1c2a7e-93d4-4b8e-a0f5-2d7c9e41b3a6")

// UserThemeID returns the stable ID used for a user theme with no explicit ID.
func UserThemeID(displayName string) string {
	return uuid.NewSHA1(themeNamespace, []byte(displayName)).String()
}

// ---------- Built-in themes ----------

func builtinThemes() []types.ThemeInfo {
	return []types.ThemeInfo{
		{
			ID:          DarkThemeID,
			DisplayName: "Dark",
			Author:      "PDF Binder",
			Dark:        true,
			Builtin:     true,
			Sources:     []string{"themes/base.css", "themes/dark.css"},
			Colors: types.ThemeColors{
				Background:    "#1e1e1e",
				Surface:       "#252526",
				SurfaceHover:  "#2d2d30",
				SurfaceActive: "#3e3e42",
				Text:          "#f1f1f1",
				TextMuted:     "#b4b4b4",
				TextDim:       "#808080",
				Border:        "#3f3f46",
				BorderHover:   "#686868",
				Error:         "#f48771",
				Warning:       "#cca700",
				Success:       "#89d185",
			},
		},
		{
			ID:          LightThemeID,
			DisplayName: "Light",
			Author:      "PDF Binder",
			Builtin:     true,
			Sources:     []string{"themes/base.css", "themes/light.css"},
			Colors: types.ThemeColors{
				Background:    "#f5f5f5",
				Surface:       "#ffffff",
				SurfaceHover:  "#e8e8ec",
				SurfaceActive: "#d6d6dc",
				Text:          "#1e1e1e",
				TextMuted:     "#555555",
				TextDim:       "#8a8a8a",
				Border:        "#cccedb",
				BorderHover:   "#a0a0a0",
				Error:         "#c72e0f",
				Warning:       "#bf8803",
				Success:       "#388a34",
			},
		},
	}
}

// ---------- User themes ----------

func (m *Manager) loadUserThemes(builtins []types.ThemeInfo) []types.ThemeInfo {
	files, err := m.store.ListJSONFiles(m.store.ThemesDir())
	if err != nil {
		return nil
	}

	taken := make(map[string]bool, len(builtins))
	for _, t := range builtins {
		taken[t.ID] = true
	}

	var user []types.ThemeInfo
	for _, path := range files {
		var t types.ThemeInfo
		if _, err := m.store.LoadJSON(path, &t); err != nil {
			debug.LogSettings("Skipping unreadable user theme", map[string]interface{}{
				"file":  path,
				"error": err.Error(),
			})
			continue
		}

		if t.DisplayName == "" {
			continue
		}
		if t.ID == "" {
			t.ID = UserThemeID(t.DisplayName)
		}

		// Never let a user theme overwrite a builtin or an earlier user theme
		if taken[t.ID] {
			continue
		}
		taken[t.ID] = true

		t.Builtin = false
		user = append(user, t)
	}

	sort.SliceStable(user, func(i, j int) bool {
		return user[i].DisplayName < user[j].DisplayName
	})
	return user
}

// Themes returns the catalog: builtins first, then user themes by name.
func (m *Manager) Themes() []types.ThemeInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.ThemeInfo, len(m.themes))
	copy(out, m.themes)
	return out
}

// ReloadThemes rescans the user themes directory.
func (m *Manager) ReloadThemes() {
	builtins := builtinThemes()
	user := m.loadUserThemes(builtins)

	m.mu.Lock()
	m.themes = append(builtins, user...)
	m.mu.Unlock()
}
