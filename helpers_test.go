package mcpi

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/mcpi/text"
)

// newTestStrip builds a small glyph strip where glyph g is a single dark
// column at offset g inside its 12x8 cell, so every glyph renders
// differently.
func newTestStrip(t *testing.T) *text.Strip {
	t.Helper()
	const cellW, cellH = 12, 8
	img := image.NewRGBA(image.Rect(0, 0, cellW*text.GlyphCount, cellH))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for g := 0; g < text.GlyphCount; g++ {
		for y := 0; y < cellH; y++ {
			img.SetRGBA(g*cellW+g, y, color.RGBA{A: 0xFF})
		}
	}
	s, err := text.NewStrip(img)
	if err != nil {
		t.Fatalf("text.NewStrip() error = %v", err)
	}
	return s
}

// fixedSampler replays points in order and then repeats the last one.
func fixedSampler(points ...Point) Sampler {
	i := 0
	return SamplerFunc(func() Point {
		p := points[i]
		if i < len(points)-1 {
			i++
		}
		return p
	})
}

func newTestSimulation(t *testing.T, s Sampler, opts ...Option) *Simulation {
	t.Helper()
	sim, err := NewSimulation(640, 640, s, newTestStrip(t), opts...)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return sim
}
