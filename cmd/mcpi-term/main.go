// Command mcpi-term runs the Monte Carlo pi estimator in a terminal.
//
// It draws the same accumulation canvas as mcpi, downsampled to terminal
// cells, with the running estimate on the bottom row. Press q or Escape to
// quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gogpu/mcpi"
	"github.com/gogpu/mcpi/integration/termdisplay"
	"github.com/gogpu/mcpi/text"
)

// fontDir is the glyph strip directory, set with -ldflags.
var fontDir = "assets"

func main() {
	var (
		size    = flag.Int("size", 640, "canvas size in pixels")
		refresh = flag.Duration("refresh", 50*time.Millisecond, "minimum time between redraws")
		seed    = flag.Uint64("seed", 0, "PCG seed for a reproducible run (0 uses crypto/rand)")
		logFile = flag.String("log", "", "write logs to this file")
	)
	flag.Parse()

	// The terminal belongs to tcell, so logs go to a file or nowhere.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		mcpi.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
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
	loop := mcpi.NewLoop(sim, mcpi.WithReportWriter(io.Discard))

	display, err := termdisplay.NewTerminal(termdisplay.Options{
		MinRefresh: *refresh,
		Label: func() string {
			return fmt.Sprintf("pi %s  n %s  fps %.0f",
				sim.EstimateText(), sim.CountText(), loop.FPS())
		},
	})
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := loop.Run(ctx, display)
	_ = display.Close()

	c := sim.Counts()
	pi, _ := c.Estimate()
	fmt.Printf("%.15f after %d samples\n", pi, c.Total())

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatalf("Loop failed: %v", runErr)
	}
}
