package grade

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette resolves the display color of a band
type Palette interface {
	Color(b Band) color.RGBA
}

// BandPalette is a fixed color per band
type BandPalette [4]color.RGBA

// DefaultPalette is used when no palette is configured
var DefaultPalette = BandPalette{
	Green:  {R: 0x2e, G: 0x9e, B: 0x44, A: 0xff},
	Yellow: {R: 0xf2, G: 0xc4, B: 0x0f, A: 0xff},
	Orange: {R: 0xf2, G: 0x8a, B: 0x0f, A: 0xff},
	Red:    {R: 0xd6, G: 0x28, B: 0x28, A: 0xff},
}

// Color returns the color of a band. Unknown bands fall back to green.
func (p BandPalette) Color(b Band) color.RGBA {
	if b < Green || b > Red {
		return p[Green]
	}
	return p[b]
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// HexColor formats a color as "#rrggbb"
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
