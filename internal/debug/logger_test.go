package debug

import (
	"bytes"
	"testing"
)

func TestFormatLineSortsDetails(t *testing.T) {
	got := FormatLine(CategoryTheme, "Theme applied", map[string]interface{}{
		"theme":  "dark",
		"accent": "#1BA1E2",
	})
	want := "[theme] Theme applied accent=#1BA1E2 theme=dark"
	if got != want {
		t.Errorf("FormatLine() = %q, want %q", got, want)
	}
}

func TestLogWritesOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetEnabled(false)
	LogSettings("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output while disabled, got %q", buf.String())
	}

	SetEnabled(true)
	defer SetEnabled(false)
	LogDialog("Dialog opened", nil)
	if buf.String() != "[dialog] Dialog opened\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
