// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termdisplay

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gdamore/tcell"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/gogpu/mcpi"
)

const (
	minWidth  = 10
	minHeight = 6

	// upperHalf paints the foreground on the top pixel and the background
	// on the bottom one.
	upperHalf = '▀'
)

var (
	// ErrTooSmall is returned when the terminal cannot fit a frame.
	ErrTooSmall = errors.New("termdisplay: terminal too small")

	// ErrClosed is returned by Present after Close.
	ErrClosed = errors.New("termdisplay: display is closed")
)

// Options configures a Display.
type Options struct {
	// MinRefresh is the minimum time between redraws. Frames presented
	// sooner are dropped. Zero draws every frame.
	MinRefresh time.Duration

	// LabelHeight is the number of rows reserved for the label. Defaults to 1.
	LabelHeight int

	// Label returns the text drawn in the label rows. Optional.
	Label func() string

	// Now is the time source for MinRefresh. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns a 50ms refresh and a one-row label.
func DefaultOptions() Options {
	return Options{
		MinRefresh:  50 * time.Millisecond,
		LabelHeight: 1,
		Now:         time.Now,
	}
}

// Display draws frames onto a tcell.Screen.
//
// PollEvents and Present must be called from one goroutine; a background
// goroutine only forwards terminal events.
type Display struct {
	opts   Options
	screen tcell.Screen
	events chan tcell.Event

	deadline time.Time
	drawn    int

	closeOnce sync.Once
	closed    bool
}

// NewTerminal opens the controlling terminal.
func NewTerminal(opts Options) (*Display, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termdisplay: open terminal: %w", err)
	}
	return New(screen, opts)
}

// New initializes screen and starts forwarding its events.
// Zero fields of opts fall back to DefaultOptions, except MinRefresh.
func New(screen tcell.Screen, opts Options) (*Display, error) {
	def := DefaultOptions()
	if opts.LabelHeight <= 0 {
		opts.LabelHeight = def.LabelHeight
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termdisplay: init screen: %w", err)
	}
	if w, h := screen.Size(); w < minWidth || h < minHeight+opts.LabelHeight {
		screen.Fini()
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, w, h)
	}
	screen.HideCursor()

	d := &Display{
		opts:   opts,
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
	go d.pollLoop()

	w, h := screen.Size()
	mcpi.Logger().Info("terminal display opened", "cols", w, "rows", h, "colors", screen.Colors())
	return d, nil
}

// pollLoop forwards terminal events until the screen is finalized.
// tcell takes over the terminal, so key presses and resizes arrive here.
func (d *Display) pollLoop() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(d.events)
			return
		}
		select {
		case d.events <- ev:
		default:
			// Frame loop is far behind; drop the event.
		}
	}
}

// PollEvents returns pending events without blocking.
func (d *Display) PollEvents() []mcpi.Event {
	var out []mcpi.Event
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return append(out, mcpi.EventQuit)
			}
			out = append(out, d.translate(ev))
		default:
			return out
		}
	}
}

func (d *Display) translate(ev tcell.Event) mcpi.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return mcpi.EventQuit
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return mcpi.EventQuit
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.deadline = time.Time{}
	}
	return mcpi.EventNone
}

// Present draws frame unless the previous draw is within MinRefresh.
func (d *Display) Present(frame *image.RGBA) error {
	if d.closed {
		return ErrClosed
	}
	if frame == nil {
		return nil
	}

	now := d.opts.Now()
	if now.Before(d.deadline) {
		return nil
	}
	d.deadline = now.Add(d.opts.MinRefresh)

	d.screen.Clear()
	d.drawFrame(frame)
	d.drawLabel()
	d.screen.Show()
	d.drawn++
	return nil
}

// Draws returns how many frames reached the screen.
func (d *Display) Draws() int {
	return d.drawn
}

// frameArea returns the square pixel side and the cell origin for frames.
func (d *Display) frameArea() (side, x0 int) {
	w, h := d.screen.Size()
	rows := h - d.opts.LabelHeight
	side = min(w, rows*2)
	side -= side % 2
	return side, (w - side) / 2
}

func (d *Display) drawFrame(frame *image.RGBA) {
	side, x0 := d.frameArea()
	if side <= 0 {
		return
	}
	b := frame.Bounds()
	fw, fh := b.Dx(), b.Dy()

	for cy := 0; cy < side/2; cy++ {
		top := b.Min.Y + (2*cy)*fh/side
		bottom := b.Min.Y + (2*cy+1)*fh/side
		for cx := 0; cx < side; cx++ {
			fx := b.Min.X + cx*fw/side
			style := tcell.StyleDefault.
				Foreground(rgb(frame, fx, top)).
				Background(rgb(frame, fx, bottom))
			d.screen.SetContent(x0+cx, cy, upperHalf, nil, style)
		}
	}
}

func (d *Display) drawLabel() {
	if d.opts.Label == nil {
		return
	}
	w, h := d.screen.Size()
	y := h - d.opts.LabelHeight
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	for row := y; row < h; row++ {
		for col := 0; col < w; col++ {
			d.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	x := 1
	for _, r := range d.opts.Label() {
		if x >= w {
			break
		}
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func rgb(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Close restores the terminal. Close is idempotent.
func (d *Display) Close() error {
	d.closeOnce.Do(func() {
		d.closed = true
		d.screen.Fini()
	})
	return nil
}
