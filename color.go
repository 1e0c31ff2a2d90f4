package mcpi

import "image/color"

// Palette holds the canvas colors.
type Palette struct {
	// Background fills the canvas once, at creation.
	Background color.RGBA

	// Inside is painted for samples within the unit circle.
	Inside color.RGBA

	// Outside is painted for samples outside the unit circle.
	Outside color.RGBA
}

// DefaultPalette returns white background, magenta inside, cyan outside.
func DefaultPalette() Palette {
	return Palette{
		Background: Hex("#FFFFFF"),
		Inside:     Hex("#FF00FF"),
		Outside:    Hex("#00FFFF"),
	}
}

// For returns the color for a classification.
func (p Palette) For(inside bool) color.RGBA {
	if inside {
		return p.Inside
	}
	return p.Outside
}

// Hex creates an opaque or translucent color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Unrecognized input yields opaque black.
//
// The result is premultiplied, as color.RGBA requires.
func Hex(hex string) color.RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return color.RGBA{A: 255}
	}

	//nolint:gosec // G115: all components are in [0, 255]
	return color.RGBA{
		R: uint8(r * a / 255),
		G: uint8(g * a / 255),
		B: uint8(b * a / 255),
		A: uint8(a),
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}
