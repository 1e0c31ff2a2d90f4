package mcpi

import (
	"image"
	"io"
	"os"
	"time"

	"github.com/gogpu/mcpi/surface"
)

// Option configures a Simulation during creation.
//
// Example:
//
//	sim, err := mcpi.NewSimulation(640, 640, sampler, strip,
//	    mcpi.WithPalette(mcpi.Palette{
//	        Background: mcpi.Hex("#000"),
//	        Inside:     mcpi.Hex("#F00"),
//	        Outside:    mcpi.Hex("#00F"),
//	    }))
type Option func(*options)

// options holds optional configuration for Simulation creation.
type options struct {
	palette Palette
	layout  OverlayLayout
	canvas  surface.Canvas
}

// defaultOptions returns the default simulation options.
func defaultOptions() options {
	return options{
		palette: DefaultPalette(),
		layout:  DefaultOverlayLayout(),
		canvas:  nil, // Will be created if nil
	}
}

// WithPalette sets the canvas colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithOverlayLayout sets the overlay surface size and positions.
func WithOverlayLayout(l OverlayLayout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithCanvas injects the accumulation canvas, e.g. a GPU-backed target.
// Its dimensions must match those passed to NewSimulation. The palette
// background is not applied to an injected canvas.
func WithCanvas(c surface.Canvas) Option {
	return func(o *options) {
		o.canvas = c
	}
}

// OverlayLayout places the two overlay surfaces over the canvas.
type OverlayLayout struct {
	// Width and Height are the size of each overlay surface.
	Width, Height int

	// EstimateAt is the top-left corner of the pi estimate overlay.
	EstimateAt image.Point

	// CountAt is the top-left corner of the sample count overlay.
	CountAt image.Point
}

// DefaultOverlayLayout returns 600x40 overlays at (0,0) and (0,60).
func DefaultOverlayLayout() OverlayLayout {
	return OverlayLayout{
		Width:      600,
		Height:     40,
		EstimateAt: image.Pt(0, 0),
		CountAt:    image.Pt(0, 60),
	}
}

// Default frame loop schedule.
const (
	// DefaultOverlayEvery is how often, in frames, overlays are re-rendered.
	DefaultOverlayEvery = 200

	// DefaultFPSEvery is how often, in frames, throughput is reported.
	DefaultFPSEvery = 5000
)

// LoopOption configures a Loop during creation.
type LoopOption func(*loopOptions)

type loopOptions struct {
	overlayEvery uint64
	fpsEvery     uint64
	report       io.Writer
	clock        func() time.Time
}

func defaultLoopOptions() loopOptions {
	return loopOptions{
		overlayEvery: DefaultOverlayEvery,
		fpsEvery:     DefaultFPSEvery,
		report:       os.Stdout,
		clock:        time.Now,
	}
}

// WithOverlayEvery sets the overlay re-render interval in frames.
// Overlay text trails the counts by up to n-1 frames; rasterizing glyphs
// every frame would cost more than the sample itself. Values below 1 mean
// every frame.
func WithOverlayEvery(n int) LoopOption {
	return func(o *loopOptions) {
		o.overlayEvery = atLeastOne(n)
	}
}

// WithFPSEvery sets the throughput report interval in frames.
// Values below 1 mean every frame.
func WithFPSEvery(n int) LoopOption {
	return func(o *loopOptions) {
		o.fpsEvery = atLeastOne(n)
	}
}

// WithReportWriter sets where FPS lines are written. Defaults to os.Stdout.
// Pass io.Discard to silence them.
func WithReportWriter(w io.Writer) LoopOption {
	return func(o *loopOptions) {
		if w != nil {
			o.report = w
		}
	}
}

// WithClock sets the time source for FPS measurement. Defaults to time.Now.
func WithClock(now func() time.Time) LoopOption {
	return func(o *loopOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

func atLeastOne(n int) uint64 {
	if n < 1 {
		return 1
	}
	return uint64(n)
}
