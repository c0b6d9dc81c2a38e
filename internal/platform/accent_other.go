//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package platform

import "github.com/peternagy/pdfbinder/internal/types"

func windowGlassColor() (types.Color, error) {
	return types.Color{}, ErrAccentUnavailable
}
