// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/mcpi"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the texture cannot be drawn by
	// the draw context.
	ErrInvalidDrawContext = errors.New("gpucanvas: texture does not implement gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("gpucanvas: draw context has no TextureCreator")
)

// DrawerFrom extracts a gpucontext.TextureDrawer from a gogpu draw context.
//
// It accepts either a value that implements TextureDrawer itself or one
// that exposes AsTextureDrawer, as *gogpu.Context does.
func DrawerFrom(dc any) (gpucontext.TextureDrawer, bool) {
	switch v := dc.(type) {
	case interface {
		AsTextureDrawer() gpucontext.TextureDrawer
	}:
		d := v.AsTextureDrawer()
		return d, d != nil
	case gpucontext.TextureDrawer:
		return v, true
	default:
		return nil, false
	}
}

// RenderTo draws the latest frame at (0, 0).
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    drawer, _ := gpucanvas.DrawerFrom(dc)
//	    canvas.RenderTo(drawer)
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the latest frame with its top-left corner at (x, y).
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA waits for the GPU, so the old texture is
		// unreferenced once it returns.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gpucanvas: NewTextureFromRGBA failed: %w", err)
		}

		// Composited frames are premultiplied.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}

		c.texture = realTex
		tex = realTex
		mcpi.Logger().Debug("gpu canvas texture created", "width", pending.width, "height", pending.height)

		if c.oldTexture != nil {
			destroy(c.oldTexture)
			c.oldTexture = nil
		}
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}
