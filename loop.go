package mcpi

import (
	"context"
	"image"

	"github.com/gogpu/mcpi/surface"
)

// State is the frame loop state.
type State uint8

const (
	// Running processes one sample per frame.
	Running State = iota

	// Terminating is final: resources are released and no further samples
	// are processed.
	Terminating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Terminating:
		return "Terminating"
	default:
		return "Unknown"
	}
}

// Event is an input event drained from a Display.
type Event uint8

const (
	// EventNone is ignored.
	EventNone Event = iota

	// EventQuit requests termination, e.g. a window close.
	EventQuit
)

// Display is a pull-style presentation target for Run.
//
// Hosts that drive frames through callbacks (such as a gogpu window) call
// Step and Stop directly instead.
type Display interface {
	// PollEvents returns pending events without blocking.
	PollEvents() []Event

	// Present shows a composited frame. The frame is reused by the next
	// Step, so implementations must copy it if they keep it.
	Present(frame *image.RGBA) error
}

// Loop drives a Simulation one sample per frame.
//
// Each Step samples, classifies, records and paints once, re-renders the
// overlays on their decimation schedule, composites canvas and overlays,
// and periodically reports throughput.
//
// Loop is NOT safe for concurrent use.
type Loop struct {
	sim   *Simulation
	state State
	frame uint64

	comp         *surface.Compositor
	overlayEvery uint64
	overlaysSeen bool
	fps          *fpsMeter
}

// NewLoop creates a Loop in the Running state.
func NewLoop(sim *Simulation, opts ...LoopOption) *Loop {
	o := defaultLoopOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := sim.Canvas()
	return &Loop{
		sim:          sim,
		state:        Running,
		comp:         surface.NewCompositor(c.Width(), c.Height()),
		overlayEvery: o.overlayEvery,
		fps:          newFPSMeter(o.fpsEvery, o.clock, o.report),
	}
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames stepped so far.
func (l *Loop) Frames() uint64 {
	return l.frame
}

// Simulation returns the driven simulation.
func (l *Loop) Simulation() *Simulation {
	return l.sim
}

// FPS returns the last reported frames-per-second, or 0 before the first
// report.
func (l *Loop) FPS() float64 {
	return l.fps.fps
}

// Step runs one frame and returns the composited image to present.
// The returned image is reused by the next Step.
//
// Step returns nil once the loop is Terminating.
func (l *Loop) Step() *image.RGBA {
	if l.state != Running {
		return nil
	}

	l.sim.Advance()
	l.frame++

	if !l.overlaysSeen || l.frame%l.overlayEvery == 0 {
		l.sim.RenderOverlays()
		l.overlaysSeen = true
		Logger().Debug("overlay rendered", "frame", l.frame, "estimate", l.sim.EstimateText())
	}

	frame := l.comp.Compose(l.sim.Canvas().Present(), l.sim.Overlays()...)
	l.fps.tick()
	return frame
}

// Stop moves the loop to Terminating and releases the simulation.
// Stop is idempotent.
func (l *Loop) Stop() {
	if l.state == Terminating {
		return
	}
	l.state = Terminating
	if err := l.sim.Close(); err != nil {
		Logger().Warn("simulation close failed", "err", err)
	}

	c := l.sim.Counts()
	pi, _ := c.Estimate()
	Logger().Info("loop stopped", "frames", l.frame, "samples", c.Total(), "estimate", pi)
}

// Run steps the loop against a pull-style Display until an EventQuit is
// polled or ctx is done.
//
// Present failures are logged and the loop continues. Run returns nil on
// EventQuit and ctx.Err() on cancellation; in both cases the loop is left
// Terminating.
func (l *Loop) Run(ctx context.Context, d Display) error {
	for l.state == Running {
		if err := ctx.Err(); err != nil {
			l.Stop()
			return err
		}

		for _, ev := range d.PollEvents() {
			if ev == EventQuit {
				l.Stop()
			}
		}
		if l.state != Running {
			break
		}

		frame := l.Step()
		if err := d.Present(frame); err != nil {
			Logger().Warn("present failed", "frame", l.frame, "err", err)
		}
	}
	return nil
}
