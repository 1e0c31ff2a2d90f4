// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Canvas is a persistent pixel target.
//
// Implementations must keep painted pixels until the canvas is closed.
// Paint is a straight overwrite: painting the same pixel twice leaves only
// the second color. Writes outside the canvas bounds are ignored.
//
// Canvases are NOT thread-safe.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Paint writes a single pixel.
	Paint(x, y int, c color.RGBA)

	// Present returns the full canvas for compositing.
	// The returned image is unchanged between paints.
	Present() *image.RGBA

	// Close releases all resources associated with the canvas.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Layer is an image blended over the canvas at a fixed position.
type Layer struct {
	// Image is the layer content. A nil Image is skipped.
	Image *image.RGBA

	// At is the top-left destination of the layer in frame coordinates.
	At image.Point
}
