// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"golang.org/x/image/draw"
)

// Compositor blends a canvas and its overlay layers into a reusable frame.
//
// The frame buffer is allocated once. Each Compose call copies the canvas
// into it and blends the layers on top with source-over, so the canvas
// itself is never touched by overlays.
type Compositor struct {
	frame *image.RGBA
}

// NewCompositor creates a compositor producing width x height frames.
// Non-positive dimensions are raised to 1.
func NewCompositor(width, height int) *Compositor {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Compositor{frame: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Compose copies base into the frame and blends layers over it in order.
// The returned image is reused by the next call.
func (c *Compositor) Compose(base image.Image, layers ...Layer) *image.RGBA {
	if base != nil {
		draw.Draw(c.frame, c.frame.Bounds(), base, base.Bounds().Min, draw.Src)
	}
	for _, l := range layers {
		if l.Image == nil {
			continue
		}
		src := l.Image.Bounds()
		dst := src.Sub(src.Min).Add(l.At)
		draw.Draw(c.frame, dst, l.Image, src.Min, draw.Over)
	}
	return c.frame
}

// Frame returns the most recently composed frame.
func (c *Compositor) Frame() *image.RGBA {
	return c.frame
}
