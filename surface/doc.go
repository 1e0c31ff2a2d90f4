// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the accumulation canvas and frame compositing.
//
// Canvas is the capability the simulation paints through: one pixel per
// sample, straight overwrite, never cleared. Any backend that can store
// pixels (a CPU buffer, a GPU render target) can implement it; ImageSurface
// is the CPU implementation backed by *image.RGBA.
//
// # Usage
//
//	s := surface.NewImageSurface(640, 640, color.White)
//	defer s.Close()
//
//	s.Paint(320, 320, color.RGBA{255, 0, 255, 255})
//
//	comp := surface.NewCompositor(640, 640)
//	frame := comp.Compose(s.Present(), surface.Layer{Image: overlay})
//
// # Persistence
//
// An ImageSurface is filled with its background exactly once, at creation.
// There is no Clear method: historical samples remain visible for the
// lifetime of the surface. Overlays are never drawn onto the canvas itself;
// the Compositor blends them into a separate frame buffer.
package surface
