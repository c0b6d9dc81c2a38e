package types

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit ARGB color. The zero value is fully transparent black.
type Color struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// Well-known colors.
var (
	Black = Color{A: 0xff}
	White = Color{A: 0xff, R: 0xff, G: 0xff, B: 0xff}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 0xff, R: r, G: g, B: b}
}

// IsZero reports whether c is the zero value.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex formats the color as #RRGGBB, or #AARRGGBB when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Colorful converts the color channels to a colorful.Color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a colorful.Color back to a Color with the given alpha.
func FromColorful(cc colorful.Color, alpha uint8) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{A: alpha, R: r, G: g, B: b}
}

// ParseColor parses #RGB, #RRGGBB and #AARRGGBB strings.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("invalid color %q: missing '#'", s)
	}

	switch len(s) {
	case 4, 7:
		cc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return FromColorful(cc, 0xff), nil
	case 9:
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color alpha %q: %w", s, err)
		}
		cc, err := colorful.Hex("#" + s[3:])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return FromColorful(cc, uint8(a)), nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: unexpected length", s)
	}
}

// MarshalText encodes the color as a hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex color string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
