// Command mkdigits renders the overlay glyph strip (digits 0-9 and '.')
// into a BMP file for mcpi.
//
//	go run ./cmd/mkdigits -output assets/digits.bmp -size 40
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/mcpi/text"
)

func main() {
	var (
		output  = flag.String("output", "assets/digits.bmp", "output file")
		size    = flag.Float64("size", 40, "font size in pixels")
		padding = flag.Int("padding", 0, "cell padding in pixels")
		font    = flag.String("font", "", "TTF/OTF file (default Go Mono)")
	)
	flag.Parse()

	opts := text.GenerateOptions{Size: *size, Padding: *padding}
	if *font != "" {
		data, err := os.ReadFile(*font)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		opts.Font = data
	}

	img, err := text.GenerateStrip(opts)
	if err != nil {
		log.Fatalf("Failed to generate strip: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := text.EncodeStrip(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := img.Bounds()
	log.Printf("Glyph strip saved to %s (%dx%d, %d cells)\n", *output, b.Dx(), b.Dy(), text.GlyphCount)
}
