package text

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GenerateOptions configures GenerateStrip.
type GenerateOptions struct {
	// Font is TTF/OTF data. Defaults to Go Mono.
	Font []byte

	// Size is the font size in pixels. Defaults to 64.
	Size float64

	// Padding is added on every side of each cell, in pixels.
	Padding int

	// Foreground is the glyph color. Defaults to black.
	Foreground color.Color

	// Background fills the strip. Defaults to white.
	// It must differ from Foreground, since it becomes the color key.
	Background color.Color
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.Font == nil {
		o.Font = gomono.TTF
	}
	if o.Size <= 0 {
		o.Size = 64
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// GenerateStrip rasterizes the overlay alphabet into a glyph strip.
//
// Cell width is the widest shaped advance in the alphabet plus padding, so
// every glyph fits one cell regardless of whether the font is monospaced.
// Each glyph is centered horizontally within its cell.
func GenerateStrip(opts GenerateOptions) (*image.RGBA, error) {
	opts = opts.withDefaults()
	if len(opts.Font) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(opts.Font)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	advance, err := maxShapedAdvance(opts.Font, opts.Size)
	if err != nil {
		return nil, err
	}

	m := face.Metrics()
	cellW := int(math.Ceil(advance)) + 2*opts.Padding
	cellH := (m.Ascent + m.Descent).Ceil() + 2*opts.Padding
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("text: degenerate cell %dx%d", cellW, cellH)
	}

	img := image.NewRGBA(image.Rect(0, 0, cellW*GlyphCount, cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Foreground),
		Face: face,
	}
	baseline := opts.Padding + m.Ascent.Ceil()
	for i, r := range Glyphs {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			return nil, fmt.Errorf("text: font has no glyph for %q", r)
		}
		x := i*cellW + (cellW-adv.Ceil())/2
		d.Dot = fixed.P(x, baseline)
		d.DrawString(string(r))
	}
	return img, nil
}

// maxShapedAdvance shapes the alphabet with HarfBuzz and returns the widest
// glyph advance in pixels.
func maxShapedAdvance(data []byte, size float64) (float64, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	runes := []rune(Glyphs)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	var hb shaping.HarfbuzzShaper
	out := hb.Shape(input)

	var widest fixed.Int26_6
	for _, g := range out.Glyphs {
		if g.Advance > widest {
			widest = g.Advance
		}
	}
	if widest <= 0 {
		return 0, errors.New("text: shaping produced no advances")
	}
	return float64(widest) / 64, nil
}
