// Command mcpi-batch runs the Monte Carlo pi estimator without a window.
//
// It draws -samples points, prints the estimate and optionally saves the
// final canvas with its overlays as a BMP image.
//
//	mcpi-batch -samples 1000000 -seed 7 -output pi.bmp
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/image/bmp"

	"github.com/gogpu/mcpi"
	"github.com/gogpu/mcpi/surface"
	"github.com/gogpu/mcpi/text"
)

// fontDir is the glyph strip directory, set with -ldflags.
var fontDir = "assets"

// progressStep is how many samples run between progress bar updates.
const progressStep = 10000

func main() {
	var (
		samples = flag.Int("samples", 1_000_000, "number of samples")
		size    = flag.Int("size", 640, "canvas size in pixels")
		seed    = flag.Uint64("seed", 0, "PCG seed for a reproducible run (0 uses crypto/rand)")
		output  = flag.String("output", "", "save the final frame to this BMP file")
	)
	flag.Parse()

	if *samples <= 0 {
		log.Fatalf("Invalid sample count: %d", *samples)
	}

	var src mcpi.Source
	if *seed != 0 {
		src = mcpi.NewPCGSource(*seed, *seed)
	} else {
		cs, err := mcpi.NewCryptoSource()
		if err != nil {
			log.Fatalf("Failed to initialize random source: %v", err)
		}
		src = cs
	}

	strip, err := text.LoadStrip(filepath.Join(fontDir, "digits.bmp"))
	if err != nil {
		log.Fatalf("Failed to load glyph strip: %v", err)
	}
	sim, err := mcpi.NewSimulation(*size, *size, mcpi.NewRandomSampler(src), strip)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	defer func() { _ = sim.Close() }()

	bar := pb.StartNew(*samples)
	for done := 0; done < *samples; {
		n := min(progressStep, *samples-done)
		for i := 0; i < n; i++ {
			sim.Advance()
		}
		done += n
		bar.Add(n)
	}
	bar.Finish()

	c := sim.Counts()
	fmt.Printf("pi ~ %s (inside %d, outside %d)\n", sim.EstimateText(), c.Inside, c.Outside)

	if *output == "" {
		return
	}
	sim.RenderOverlays()
	frame := surface.NewCompositor(*size, *size).Compose(sim.Canvas().Present(), sim.Overlays()...)
	if err := save(*output, frame); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Frame saved to %s (%dx%d)\n", *output, *size, *size)
}

func save(path string, frame *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, frame); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
