// Command mcpi estimates pi by Monte Carlo sampling and shows the samples
// accumulating live in a window.
//
// Each frame draws one point in [-1,1]x[-1,1], paints it magenta if it falls
// inside the unit circle and cyan otherwise, and overlays the running
// estimate and sample count.
//
// The glyph strip is read from fontDir/digits.bmp. Override the directory at
// build time:
//
//	go build -ldflags "-X main.fontDir=/usr/share/mcpi" ./cmd/mcpi
package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/mcpi"
	"github.com/gogpu/mcpi/integration/gpucanvas"
	"github.com/gogpu/mcpi/text"
)

// fontDir is the glyph strip directory, set with -ldflags.
var fontDir = "assets"

const (
	width  = 640
	height = 640
	title  = "Monte carlo"
)

func main() {
	mcpi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	src, err := mcpi.NewCryptoSource()
	if err != nil {
		log.Fatalf("Failed to initialize random source: %v", err)
	}

	stripPath := filepath.Join(fontDir, "digits.bmp")
	strip, err := text.LoadStrip(stripPath)
	if err != nil {
		log.Fatalf("Failed to load glyph strip: %v", err)
	}
	cw, ch := strip.CellSize()
	mcpi.Logger().Info("glyph strip loaded", "path", stripPath, "cell_width", cw, "cell_height", ch)

	sim, err := mcpi.NewSimulation(width, height, mcpi.NewRandomSampler(src), strip)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	loop := mcpi.NewLoop(sim)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(true))

	var canvas *gpucanvas.Canvas

	app.OnDraw(func(dc *gogpu.Context) {
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			canvas, err = gpucanvas.New(provider, width, height)
			if err != nil {
				log.Fatalf("Failed to create canvas: %v", err)
			}
		}

		frame := loop.Step()
		if frame == nil {
			return
		}
		if err := canvas.Upload(frame); err != nil {
			mcpi.Logger().Warn("upload failed", "frame", loop.Frames(), "err", err)
			return
		}

		drawer, ok := gpucanvas.DrawerFrom(dc)
		if !ok {
			mcpi.Logger().Warn("draw context cannot draw textures", "frame", loop.Frames())
			return
		}
		if err := canvas.RenderTo(drawer); err != nil {
			mcpi.Logger().Warn("present failed", "frame", loop.Frames(), "err", err)
		}
	})

	app.OnClose(func() {
		loop.Stop()
		if canvas != nil {
			_ = canvas.Close()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatalf("Window loop failed: %v", err)
	}
}
