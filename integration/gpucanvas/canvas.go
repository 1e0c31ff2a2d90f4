// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/mcpi"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gpucanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gpucanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpucanvas: nil DeviceProvider")

	// ErrNilFrame is returned when Upload is given no frame.
	ErrNilFrame = errors.New("gpucanvas: nil frame")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas holds the latest composited frame and its GPU texture.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	provider    gpucontext.DeviceProvider
	data        []byte // tightly packed RGBA staging copy
	texture     any    // *pendingTexture until first RenderTo, then the GPU texture
	oldTexture  any    // previous texture awaiting deferred destruction
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a Canvas for frames of width x height pixels.
// The provider should come from gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, width, height int) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	mcpi.Logger().Info("gpu canvas created",
		"width", width, "height", height, "surface_format", provider.SurfaceFormat())

	return &Canvas{
		provider: provider,
		data:     make([]byte, width*height*4),
		width:    width,
		height:   height,
		dirty:    true, // first Flush creates the texture
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty reports whether an uploaded frame has not reached the GPU yet.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Upload copies frame into the staging buffer and marks the canvas dirty.
//
// A frame of a different size than the canvas resizes it; the texture is
// recreated on the next RenderTo.
func (c *Canvas) Upload(frame *image.RGBA) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if frame == nil {
		return ErrNilFrame
	}

	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}
	if w != c.width || h != c.height {
		c.width, c.height = w, h
		c.data = make([]byte, w*h*4)
		c.sizeChanged = true
	}

	row := w * 4
	for y := 0; y < h; y++ {
		off := frame.PixOffset(b.Min.X, b.Min.Y+y)
		copy(c.data[y*row:(y+1)*row], frame.Pix[off:off+row])
	}
	c.dirty = true
	return nil
}

// Flush pushes the staged frame to the GPU texture if dirty and returns the
// texture.
//
// Before the first RenderTo the returned value is a pending placeholder; the
// real texture needs a gpucontext.TextureCreator.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// The old texture may still be referenced by in-flight command buffers,
	// so it is destroyed in RenderTo after the replacement is written.
	if c.sizeChanged {
		if c.texture != nil {
			if c.oldTexture != nil {
				destroy(c.oldTexture)
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if c.texture == nil {
		c.texture = &pendingTexture{width: c.width, height: c.height, data: c.data}
		c.dirty = false
		return c.texture, nil
	}

	if pending, ok := c.texture.(*pendingTexture); ok {
		pending.data = c.data
		c.dirty = false
		return pending, nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(c.data); err != nil {
			return nil, fmt.Errorf("gpucanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases the textures. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.oldTexture != nil {
		destroy(c.oldTexture)
		c.oldTexture = nil
	}
	if c.texture != nil {
		destroy(c.texture)
		c.texture = nil
	}

	c.data = nil
	c.provider = nil
	return nil
}

// Provider returns the DeviceProvider, or nil once closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds the data for a texture that is created during
// RenderTo, when a texture creator is available.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
