// Package platform reads appearance values from the host operating system.
package platform

import (
	"errors"
	"strconv"
	"strings"

	"github.com/peternagy/pdfbinder/internal/types"
)

// ErrAccentUnavailable is returned when the OS exposes no accent color.
var ErrAccentUnavailable = errors.New("system accent color not available")

// System queries the current operating system.
type System struct{}

// NewSystem returns a System for the running OS.
func NewSystem() *System {
	return &System{}
}

// WindowGlassColor returns the OS window/glass accent color.
func (s *System) WindowGlassColor() (types.Color, error) {
	return windowGlassColor()
}

// gnomeAccents are the libadwaita accent colors reported by
// org.gnome.desktop.interface accent-color.
var gnomeAccents = map[string]types.Color{
	"blue":   types.RGB(0x35, 0x84, 0xe4),
	"teal":   types.RGB(0x21, 0x90, 0xa4),
	"green":  types.RGB(0x3a, 0x94, 0x4a),
	"yellow": types.RGB(0xc8, 0x88, 0x00),
	"orange": types.RGB(0xed, 0x5b, 0x00),
	"red":    types.RGB(0xe6, 0x2d, 0x42),
	"pink":   types.RGB(0xd5, 0x61, 0x99),
	"purple": types.RGB(0x91, 0x41, 0xac),
	"slate":  types.RGB(0x6f, 0x83, 0x96),
}

// ParseGnomeAccent converts gsettings output such as "'teal'\n" to a color.
func ParseGnomeAccent(output string) (types.Color, error) {
	name := strings.Trim(strings.TrimSpace(output), "'\"")
	c, ok := gnomeAccents[name]
	if !ok {
		return types.Color{}, ErrAccentUnavailable
	}
	return c, nil
}

// macAccents are indexed by the AppleAccentColor default; -1 is graphite.
var macAccents = map[int]types.Color{
	-1: types.RGB(0x8c, 0x8c, 0x8c),
	0:  types.RGB(0xec, 0x5f, 0x5d),
	1:  types.RGB(0xe8, 0x88, 0x2f),
	2:  types.RGB(0xf5, 0xc8, 0x44),
	3:  types.RGB(0x78, 0xb7, 0x56),
	4:  types.RGB(0x00, 0x7a, 0xff),
	5:  types.RGB(0x9a, 0x55, 0xa3),
	6:  types.RGB(0xe4, 0x5c, 0x9c),
}

// macDefaultAccent applies when AppleAccentColor is not set.
var macDefaultAccent = macAccents[4]

// ParseMacAccent converts `defaults read -g AppleAccentColor` output to a color.
func ParseMacAccent(output string) (types.Color, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(output))
	if err != nil {
		return types.Color{}, ErrAccentUnavailable
	}
	c, ok := macAccents[idx]
	if !ok {
		return types.Color{}, ErrAccentUnavailable
	}
	return c, nil
}

// FromColorization converts a DWM colorization value (0xAARRGGBB).
func FromColorization(v uint32) types.Color {
	return types.Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
