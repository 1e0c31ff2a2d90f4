package text

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// newTestStripImage builds a white strip with cellW x cellH cells where
// glyph i has a black vertical bar in column i%cellW, i%cellH+1 pixels tall.
func newTestStripImage(cellW, cellH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cellW*GlyphCount, cellH))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for g := 0; g < GlyphCount; g++ {
		x := g*cellW + g%cellW
		for y := 0; y <= g%cellH; y++ {
			img.SetRGBA(x, y+cellH-1-g%cellH, black)
		}
	}
	return img
}

func TestGlyphIndex(t *testing.T) {
	tests := []struct {
		r      rune
		want   int
		wantOK bool
	}{
		{'0', 0, true},
		{'5', 5, true},
		{'9', 9, true},
		{'.', 10, true},
		{'-', 0, false},
		{'e', 0, false},
		{'N', 0, false},
		{' ', 0, false},
	}
	for _, tt := range tests {
		got, ok := GlyphIndex(tt.r)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("GlyphIndex(%q) = (%d, %v), want (%d, %v)", tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
	if GlyphCount != 11 {
		t.Errorf("GlyphCount = %d, want 11", GlyphCount)
	}
}

func TestNewStrip(t *testing.T) {
	s, err := NewStrip(newTestStripImage(4, 8))
	if err != nil {
		t.Fatalf("NewStrip() error = %v", err)
	}

	w, h := s.CellSize()
	if w != 4 || h != 8 {
		t.Errorf("CellSize() = %dx%d, want 4x8", w, h)
	}
	if got, want := s.Cell(10), image.Rect(40, 0, 44, 8); got != want {
		t.Errorf("Cell(10) = %v, want %v", got, want)
	}
	if got := s.Cell(11); !got.Empty() {
		t.Errorf("Cell(11) = %v, want empty", got)
	}
	if got := s.Cell(-1); !got.Empty() {
		t.Errorf("Cell(-1) = %v, want empty", got)
	}

	// Background is keyed out, ink is kept.
	if c := s.Image().RGBAAt(1, 0); c != (color.RGBA{}) {
		t.Errorf("background pixel = %v, want transparent", c)
	}
	if c := s.Image().RGBAAt(0, 7); c != black {
		t.Errorf("ink pixel = %v, want %v", c, black)
	}
}

func TestNewStripTooSmall(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil", nil},
		{"narrow", image.NewRGBA(image.Rect(0, 0, GlyphCount-1, 10))},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStrip(tt.img)
			if !errors.Is(err, ErrInvalidStrip) {
				t.Errorf("NewStrip() error = %v, want %v", err, ErrInvalidStrip)
			}
		})
	}
}

func TestDecodeStripRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeStrip(&buf, newTestStripImage(6, 12)); err != nil {
		t.Fatalf("EncodeStrip() error = %v", err)
	}

	s, err := DecodeStrip(&buf)
	if err != nil {
		t.Fatalf("DecodeStrip() error = %v", err)
	}
	if w, h := s.CellSize(); w != 6 || h != 12 {
		t.Errorf("CellSize() = %dx%d, want 6x12", w, h)
	}
}

func TestDecodeStripInvalid(t *testing.T) {
	_, err := DecodeStrip(bytes.NewReader([]byte("not a bitmap")))
	if !errors.Is(err, ErrInvalidStrip) {
		t.Errorf("DecodeStrip() error = %v, want %v", err, ErrInvalidStrip)
	}
}

func TestLoadStrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digits.bmp")

	var buf bytes.Buffer
	if err := EncodeStrip(&buf, newTestStripImage(4, 8)); err != nil {
		t.Fatalf("EncodeStrip() error = %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := LoadStrip(path)
	if err != nil {
		t.Fatalf("LoadStrip() error = %v", err)
	}
	if w, _ := s.CellSize(); w != 4 {
		t.Errorf("cell width = %d, want 4", w)
	}
}

func TestLoadStripMissing(t *testing.T) {
	_, err := LoadStrip(filepath.Join(t.TempDir(), "missing.bmp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadStrip() error = %v, want os.ErrNotExist", err)
	}
}

func TestShippedStrip(t *testing.T) {
	s, err := LoadStrip(filepath.Join("..", "assets", "digits.bmp"))
	if err != nil {
		t.Fatalf("LoadStrip() error = %v", err)
	}
	if w, h := s.CellSize(); w != 40 || h != 80 {
		t.Errorf("CellSize() = %dx%d, want 40x80", w, h)
	}

	r, err := NewRenderer(s, 600, 40)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	if r.Scale() != 2 {
		t.Errorf("Scale() = %d, want 2", r.Scale())
	}
}
