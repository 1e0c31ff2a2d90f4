package text

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Strip is a decoded glyph strip: GlyphCount equal-width cells in one row.
//
// Pixels matching the strip's background (its top-left pixel) are stored as
// transparent.
type Strip struct {
	img   *image.RGBA
	cellW int
	cellH int
}

// LoadStrip reads a BMP glyph strip from path.
func LoadStrip(path string) (*Strip, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the build-time asset directory
	if err != nil {
		return nil, fmt.Errorf("text: open glyph strip: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := DecodeStrip(f)
	if err != nil {
		return nil, fmt.Errorf("text: load %s: %w", path, err)
	}
	return s, nil
}

// DecodeStrip decodes a BMP glyph strip.
func DecodeStrip(r io.Reader) (*Strip, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStrip, err)
	}
	return NewStrip(img)
}

// NewStrip builds a Strip from an already decoded image.
// The image must be at least GlyphCount pixels wide and one pixel tall.
// Cell width is the image width divided by GlyphCount; leftover columns on
// the right are ignored.
func NewStrip(img image.Image) (*Strip, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidStrip)
	}
	b := img.Bounds()
	if b.Dx() < GlyphCount || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: %dx%d is too small for %d cells", ErrInvalidStrip, b.Dx(), b.Dy(), GlyphCount)
	}

	key := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.RGBA)
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if c == key {
				continue
			}
			dst.SetRGBA(x, y, c)
		}
	}

	return &Strip{
		img:   dst,
		cellW: b.Dx() / GlyphCount,
		cellH: b.Dy(),
	}, nil
}

// CellSize returns the size of one glyph cell in strip pixels.
func (s *Strip) CellSize() (width, height int) {
	return s.cellW, s.cellH
}

// Cell returns the strip rectangle of glyph i.
// Indices outside [0, GlyphCount) return an empty rectangle.
func (s *Strip) Cell(i int) image.Rectangle {
	if i < 0 || i >= GlyphCount {
		return image.Rectangle{}
	}
	return image.Rect(i*s.cellW, 0, (i+1)*s.cellW, s.cellH)
}

// Image returns the color-keyed strip image.
// This is a direct reference, not a copy.
func (s *Strip) Image() *image.RGBA {
	return s.img
}

// EncodeStrip writes img as a BMP glyph strip.
func EncodeStrip(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("text: encode glyph strip: %w", err)
	}
	return nil
}
