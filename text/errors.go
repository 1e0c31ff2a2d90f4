package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrInvalidStrip is returned when a glyph strip cannot be decoded or is
	// too small to hold one pixel per glyph cell.
	ErrInvalidStrip = errors.New("text: invalid glyph strip")

	// ErrNilStrip is returned when a nil Strip is passed to NewRenderer.
	ErrNilStrip = errors.New("text: nil glyph strip")

	// ErrInvalidDimensions is returned when overlay width or height is invalid.
	ErrInvalidDimensions = errors.New("text: invalid overlay dimensions")

	// ErrEmptyFontData is returned when GenerateStrip gets no font bytes.
	ErrEmptyFontData = errors.New("text: empty font data")
)
