package mcpi

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF00FF", color.RGBA{255, 0, 255, 255}},
		{"00ffff", color.RGBA{0, 255, 255, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#f00a", color.RGBA{170, 0, 0, 170}},
		{"#0000FF80", color.RGBA{0, 0, 128, 128}},
		{"", color.RGBA{0, 0, 0, 255}},
		{"#12345", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	if p.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Background = %v, want white", p.Background)
	}
	if got := p.For(true); got != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("For(true) = %v, want magenta", got)
	}
	if got := p.For(false); got != (color.RGBA{0, 255, 255, 255}) {
		t.Errorf("For(false) = %v, want cyan", got)
	}
}
