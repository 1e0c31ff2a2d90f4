package text

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Renderer draws overlay strings onto a fixed-size transparent surface.
//
// Glyph cells are scaled down by the smallest integer factor that fits
// them into the overlay height, and placed left to right at a fixed
// advance. Characters outside the glyph map leave an empty cell. Glyphs
// past the right edge are clipped.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	strip  *Strip
	dst    *image.RGBA
	scale  int
	cellW  int
	cellH  int
	interp draw.Interpolator
}

// NewRenderer creates a Renderer with a width x height overlay surface.
func NewRenderer(strip *Strip, width, height int) (*Renderer, error) {
	if strip == nil {
		return nil, ErrNilStrip
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	gw, gh := strip.CellSize()
	scale := (gh + height - 1) / height
	if scale < 1 {
		scale = 1
	}
	cw, ch := gw/scale, gh/scale
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}

	var interp draw.Interpolator = draw.NearestNeighbor
	if scale > 1 {
		interp = draw.ApproxBiLinear
	}

	return &Renderer{
		strip:  strip,
		dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
		scale:  scale,
		cellW:  cw,
		cellH:  ch,
		interp: interp,
	}, nil
}

// Render clears the overlay and draws s onto it.
// The returned image is reused by the next call.
func (r *Renderer) Render(s string) *image.RGBA {
	clear(r.dst.Pix)

	src := r.strip.Image()
	width := r.dst.Bounds().Dx()
	pos := 0
	for _, c := range s {
		x := pos * r.cellW
		if x >= width {
			break
		}
		pos++

		idx, ok := GlyphIndex(c)
		if !ok {
			continue
		}
		dr := image.Rect(x, 0, x+r.cellW, r.cellH)
		r.interp.Scale(r.dst, dr, src, r.strip.Cell(idx), draw.Src, nil)
	}
	return r.dst
}

// Image returns the overlay surface as last rendered.
func (r *Renderer) Image() *image.RGBA {
	return r.dst
}

// Scale returns the integer downscale factor applied to glyph cells.
func (r *Renderer) Scale() int {
	return r.scale
}

// CellSize returns the on-overlay size of one glyph cell.
func (r *Renderer) CellSize() (width, height int) {
	return r.cellW, r.cellH
}
