package mcpi

import (
	"fmt"
	"io"
	"time"
)

// fpsMeter reports achieved frames per second every n frames.
type fpsMeter struct {
	every  uint64
	frames uint64
	last   time.Time
	now    func() time.Time
	w      io.Writer
	fps    float64
}

func newFPSMeter(every uint64, now func() time.Time, w io.Writer) *fpsMeter {
	return &fpsMeter{
		every: every,
		last:  now(),
		now:   now,
		w:     w,
	}
}

// tick counts one frame and reports when the interval is complete.
func (m *fpsMeter) tick() {
	m.frames++
	if m.frames < m.every {
		return
	}
	t := m.now()
	elapsed := t.Sub(m.last).Seconds()
	m.last = t
	frames := m.frames
	m.frames = 0

	if elapsed <= 0 {
		return
	}
	m.fps = float64(frames) / elapsed
	_, _ = fmt.Fprintf(m.w, "FPS: %f\n", m.fps)
}
