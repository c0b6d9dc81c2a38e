package types

// =============================================================================
// Theme Types
// =============================================================================

// ThemeInfo describes a theme available in the catalog.
type ThemeInfo struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"name"`
	Author      string      `json:"author,omitempty"`
	Dark        bool        `json:"dark"`
	Sources     []string    `json:"sources"` // Stylesheet resources that make up the theme
	Builtin     bool        `json:"builtin"`
	Colors      ThemeColors `json:"colors"`
}

// ThemeColors holds the CSS palette the frontend applies.
type ThemeColors struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	SurfaceHover  string `json:"surfaceHover"`
	SurfaceActive string `json:"surfaceActive"`
	Text          string `json:"text"`
	TextMuted     string `json:"textMuted"`
	TextDim       string `json:"textDim"`
	Border        string `json:"border"`
	BorderHover   string `json:"borderHover"`
	Primary       string `json:"primary"`
	PrimaryHover  string `json:"primaryHover"`
	PrimaryMuted  string `json:"primaryMuted"`
	Error         string `json:"error"`
	Warning       string `json:"warning"`
	Success       string `json:"success"`
}

// AppliedTheme is the theme currently rendered, with the accent folded in.
type AppliedTheme struct {
	Theme  ThemeInfo   `json:"theme"`
	Accent Color       `json:"accent"`
	Colors ThemeColors `json:"colors"`
}

// ThemeConfig is persisted to theme_config.json.
type ThemeConfig struct {
	ActiveThemeID string `json:"activeThemeId"`
	Accent        Color  `json:"accent"`
}

// AccentOptions mirrors the Appearance section of the settings file.
type AccentOptions struct {
	ApplyWindowsDefaultAccent bool  `json:"applyWindowsDefaultAccent"`
	AccentColor               Color `json:"accentColor"`
}

// =============================================================================
// File Dialog Types
// =============================================================================

// FileFilterEntry is a single file-type filter offered by an open dialog.
type FileFilterEntry struct {
	DisplayName string `json:"displayName"` // e.g. "PDF Documents (*.pdf)"
	Pattern     string `json:"pattern"`     // e.g. "*.pdf"
}

// FindTheme resolves name against themes by ID first, then by display name.
func FindTheme(themes []ThemeInfo, name string) (ThemeInfo, bool) {
	for _, t := range themes {
		if t.ID == name {
			return t, true
		}
	}
	for _, t := range themes {
		if t.DisplayName == name {
			return t, true
		}
	}
	return ThemeInfo{}, false
}
