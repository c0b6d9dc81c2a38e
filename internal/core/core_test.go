package core

import (
	"errors"
	"testing"
)

func TestAppearanceApplyErrorUnwraps(t *testing.T) {
	cause := &ThemeNotFoundError{Name: "Sepia"}
	err := error(&AppearanceApplyError{Theme: "Sepia", Err: cause})

	var notFound *ThemeNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatal("expected AppearanceApplyError to unwrap to ThemeNotFoundError")
	}
	if err.Error() != `failed to apply theme "Sepia": theme not found: Sepia` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestEmitEvent(t *testing.T) {
	state, rec := NewTestState()
	state.EmitEvent("theme:changed", 1)

	state.DisableEvents = true
	state.EmitEvent("theme:changed", 2)

	if len(rec.Events) != 1 || rec.Events[0].Data != 1 {
		t.Errorf("unexpected events: %+v", rec.Events)
	}
	if len(rec.Named("other")) != 0 {
		t.Error("expected no events named other")
	}
}

func TestEmitEventNilState(t *testing.T) {
	var state *AppState
	state.EmitEvent("theme:changed", nil) // must not panic
}
