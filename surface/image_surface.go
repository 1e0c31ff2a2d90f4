// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface is a CPU canvas that stores pixels in an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(640, 640, color.White)
//	defer s.Close()
//
//	s.Paint(10, 20, color.RGBA{0, 255, 255, 255})
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

var _ Canvas = (*ImageSurface)(nil)

// NewImageSurface creates a canvas filled once with background.
// Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int, background color.Color) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	s := &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	if background != nil {
		draw.Draw(s.img, s.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	return s
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Paint overwrites the pixel at (x, y) with c. No blending is done.
func (s *ImageSurface) Paint(x, y int, c color.RGBA) {
	if s.closed || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// PixelAt returns the pixel at (x, y).
// Out-of-bounds coordinates and closed surfaces return transparent black.
func (s *ImageSurface) PixelAt(x, y int) color.RGBA {
	if s.closed || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// Present returns the live backing image.
// This is a direct reference, not a copy; use Snapshot for a copy.
// Returns nil after Close.
func (s *ImageSurface) Present() *image.RGBA {
	if s.closed {
		return nil
	}
	return s.img
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}
