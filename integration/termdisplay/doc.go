// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termdisplay presents composited frames on a terminal with tcell.
//
// Display implements mcpi.Display, so a Loop can be driven with Run:
//
//	d, err := termdisplay.NewTerminal(termdisplay.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//	err = loop.Run(ctx, d)
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block, so a square frame maps onto roughly square cells. The bottom
// rows hold a text label, typically the running estimate.
//
// Escape, Ctrl-C and 'q' produce mcpi.EventQuit.
package termdisplay
