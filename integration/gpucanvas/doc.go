// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpucanvas presents CPU-composited frames in a gogpu window.
//
// The data flow is:
//
//	mcpi.Loop (compose) -> *image.RGBA (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas, err := gpucanvas.New(app.GPUContextProvider(), 640, 640)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if err := canvas.Upload(loop.Step()); err != nil {
//	        return
//	    }
//	    if drawer, ok := gpucanvas.DrawerFrom(dc); ok {
//	        _ = canvas.RenderTo(drawer)
//	    }
//	})
//
// The texture is created lazily on the first RenderTo, when a
// gpucontext.TextureCreator is available, and updated in place afterwards.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Use it from the draw callback only.
//
// # Integration Without Circular Imports
//
// This package depends on gpucontext interfaces only and never imports
// gogpu directly.
package gpucanvas
