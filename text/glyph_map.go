package text

// Glyphs lists the overlay alphabet in strip order.
const Glyphs = "0123456789."

// GlyphCount is the number of cells in a glyph strip.
const GlyphCount = len(Glyphs)

// GlyphIndex returns the strip cell for r.
// '0'..'9' map to cells 0..9 and '.' maps to cell 10.
func GlyphIndex(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r == '.':
		return 10, true
	}
	return 0, false
}
