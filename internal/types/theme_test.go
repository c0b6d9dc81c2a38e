package types

import "testing"

func TestFindTheme(t *testing.T) {
	themes := []ThemeInfo{
		{ID: "dark", DisplayName: "Dark"},
		{ID: "light", DisplayName: "Light"},
		{ID: "contrast", DisplayName: "dark"},
	}

	if got, ok := FindTheme(themes, "dark"); !ok || got.DisplayName != "Dark" {
		t.Errorf("expected ID match to win, got %+v", got)
	}
	if got, ok := FindTheme(themes, "Light"); !ok || got.ID != "light" {
		t.Errorf("expected display name match, got %+v", got)
	}
	if _, ok := FindTheme(themes, "Unknown"); ok {
		t.Error("expected no match for unknown name")
	}
	if _, ok := FindTheme(nil, ""); ok {
		t.Error("expected no match in empty catalog")
	}
}
