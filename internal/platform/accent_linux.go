//go:build linux
// +build linux

package platform

import (
	"fmt"
	"os/exec"

	"github.com/peternagy/pdfbinder/internal/types"
)

// windowGlassColor asks GNOME for the accent color via gsettings.
func windowGlassColor() (types.Color, error) {
	if _, err := exec.LookPath("gsettings"); err != nil {
		return types.Color{}, ErrAccentUnavailable
	}

	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "accent-color").Output()
	if err != nil {
		return types.Color{}, fmt.Errorf("gsettings failed: %w", err)
	}
	return ParseGnomeAccent(string(out))
}
