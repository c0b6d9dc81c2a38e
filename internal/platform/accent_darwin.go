//go:build darwin
// +build darwin

package platform

import (
	"os/exec"

	"github.com/peternagy/pdfbinder/internal/types"
)

// windowGlassColor reads the AppleAccentColor global default.
func windowGlassColor() (types.Color, error) {
	out, err := exec.Command("defaults", "read", "-g", "AppleAccentColor").Output()
	if err != nil {
		// The key is absent while the default (blue) accent is selected
		return macDefaultAccent, nil
	}
	return ParseMacAccent(string(out))
}
