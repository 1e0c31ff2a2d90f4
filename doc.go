// Package mcpi estimates pi by Monte Carlo sampling and draws every sample
// as it is taken.
//
// # Overview
//
// Each frame draws one uniformly random point in [-1,1]x[-1,1], classifies
// it against the unit circle, records the result and paints a single pixel
// onto a persistent accumulation canvas. The canvas is never redrawn from
// history: every pixel is written exactly once per sample that lands on it,
// so per-frame cost does not grow with the number of samples taken.
//
// # Quick Start
//
//	src, err := mcpi.NewCryptoSource()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	strip, err := text.LoadStrip("assets/digits.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sim, err := mcpi.NewSimulation(640, 640, mcpi.NewRandomSampler(src), strip)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loop := mcpi.NewLoop(sim)
//	for i := 0; i < 1000; i++ {
//	    frame := loop.Step() // composited canvas + overlays
//	    _ = frame
//	}
//	pi, _ := sim.Counts().Estimate()
//
// # Architecture
//
// The package is organized into:
//   - Sampling: Source, Sampler, RandomSampler
//   - Accumulation: Classify, Counts, PixelFor
//   - State: Simulation owns sampler, counts, canvas and overlays
//   - Frame loop: Loop (Running -> Terminating), Display for pull-style hosts
//   - Sub-packages: surface (canvas), text (digit overlay),
//     integration/gpucanvas (gogpu window presentation)
//
// # Coordinate System
//
// Sample space is [-1,1] on both axes. Pixel space has its origin at the
// top-left corner; y = -1 maps to row 0.
//
// # Thread Safety
//
// Simulation and Loop are NOT safe for concurrent use. The frame loop owns
// all mutable state and runs on a single goroutine.
package mcpi

// Version is the current version of the module.
const Version = "0.1.0"
