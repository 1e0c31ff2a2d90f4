package mcpi

import (
	"fmt"
	"strconv"

	"github.com/gogpu/mcpi/surface"
	"github.com/gogpu/mcpi/text"
)

// Sample is the record of one simulation step.
type Sample struct {
	Point

	// Inside is the classification of Point.
	Inside bool

	// PixelX, PixelY is where the sample was painted.
	PixelX, PixelY int
}

// Simulation owns the state of one estimation run: the sampler, the running
// counts, the accumulation canvas and the two overlay renderers.
//
// Simulation is NOT safe for concurrent use.
type Simulation struct {
	sampler Sampler
	counts  Counts
	canvas  surface.Canvas
	palette Palette
	layout  OverlayLayout

	estimate *text.Renderer
	count    *text.Renderer
}

// NewSimulation creates a simulation painting onto a width x height canvas.
//
// Returns an error if dimensions are invalid, sampler or strip is nil, or
// an injected canvas does not match the dimensions.
func NewSimulation(width, height int, sampler Sampler, strip *text.Strip, opts ...Option) (*Simulation, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}
	if strip == nil {
		return nil, ErrNilStrip
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas := o.canvas
	if canvas == nil {
		canvas = surface.NewImageSurface(width, height, o.palette.Background)
	} else if canvas.Width() != width || canvas.Height() != height {
		return nil, fmt.Errorf("%w: canvas is %dx%d, want %dx%d",
			ErrInvalidDimensions, canvas.Width(), canvas.Height(), width, height)
	}

	estimate, err := text.NewRenderer(strip, o.layout.Width, o.layout.Height)
	if err != nil {
		return nil, fmt.Errorf("mcpi: estimate overlay: %w", err)
	}
	count, err := text.NewRenderer(strip, o.layout.Width, o.layout.Height)
	if err != nil {
		return nil, fmt.Errorf("mcpi: count overlay: %w", err)
	}

	return &Simulation{
		sampler:  sampler,
		canvas:   canvas,
		palette:  o.palette,
		layout:   o.layout,
		estimate: estimate,
		count:    count,
	}, nil
}

// Advance draws, classifies, records and paints one sample.
func (s *Simulation) Advance() Sample {
	p := s.sampler.Sample()
	inside := Classify(p)
	s.counts.Record(inside)

	px, py := PixelFor(p, s.canvas.Width(), s.canvas.Height())
	s.canvas.Paint(px, py, s.palette.For(inside))

	return Sample{Point: p, Inside: inside, PixelX: px, PixelY: py}
}

// Counts returns a copy of the running counts.
func (s *Simulation) Counts() Counts {
	return s.counts
}

// Canvas returns the accumulation canvas.
func (s *Simulation) Canvas() surface.Canvas {
	return s.canvas
}

// EstimateText formats the current estimate with 15 decimals.
// It returns "" before the first sample.
func (s *Simulation) EstimateText() string {
	pi, ok := s.counts.Estimate()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(pi, 'f', 15, 64)
}

// CountText formats the total sample count.
func (s *Simulation) CountText() string {
	return strconv.FormatUint(s.counts.Total(), 10)
}

// RenderOverlays re-renders both overlays from the current counts.
func (s *Simulation) RenderOverlays() {
	s.estimate.Render(s.EstimateText())
	s.count.Render(s.CountText())
}

// Overlays returns the overlay layers as last rendered.
func (s *Simulation) Overlays() []surface.Layer {
	return []surface.Layer{
		{Image: s.estimate.Image(), At: s.layout.EstimateAt},
		{Image: s.count.Image(), At: s.layout.CountAt},
	}
}

// Close releases the canvas.
func (s *Simulation) Close() error {
	return s.canvas.Close()
}
