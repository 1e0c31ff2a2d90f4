package mcpi

import "errors"

// Errors returned by mcpi constructors. All of them are startup failures.
var (
	// ErrRandomSource is returned when the random source cannot produce output.
	ErrRandomSource = errors.New("mcpi: random source unavailable")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("mcpi: invalid dimensions")

	// ErrNilSampler is returned when a nil Sampler is passed.
	ErrNilSampler = errors.New("mcpi: nil sampler")

	// ErrNilStrip is returned when no glyph strip is available for overlays.
	ErrNilStrip = errors.New("mcpi: nil glyph strip")
)
