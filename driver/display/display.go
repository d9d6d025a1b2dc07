// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display adapts a TinyGo display driver into a draw.Image so the
// raster driver can render onto embedded screens.
//
//	t := display.New(st7789dev)
//	dc, _ := gdi.NewDC(gdi.WithDrivers(raster.New(t)))
//	dc.Ellipse(image.Rect(10, 10, 60, 40))
//	t.Flush()
package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Target is a draw.Image backed by a drivers.Displayer. Displayers cannot
// be read back, so Target keeps a shadow copy of every pixel it writes.
type Target struct {
	dev    drivers.Displayer
	shadow *image.RGBA
	dirty  bool
}

// New creates a target covering the whole display, initially black.
func New(dev drivers.Displayer) *Target {
	w, h := dev.Size()
	return &Target{
		dev:    dev,
		shadow: image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
	}
}

// ColorModel implements image.Image.
func (t *Target) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (t *Target) Bounds() image.Rectangle {
	return t.shadow.Rect
}

// At returns the last color written at (x, y).
func (t *Target) At(x, y int) color.Color {
	return t.shadow.RGBAAt(x, y)
}

// RGBAAt returns the last color written at (x, y).
func (t *Target) RGBAAt(x, y int) color.RGBA {
	return t.shadow.RGBAAt(x, y)
}

// Set implements draw.Image.
func (t *Target) Set(x, y int, c color.Color) {
	t.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA writes c to the display buffer and the shadow copy. Points
// outside the display are ignored.
func (t *Target) SetRGBA(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(t.shadow.Rect) {
		return
	}
	t.shadow.SetRGBA(x, y, c)
	t.dev.SetPixel(int16(x), int16(y), c)
	t.dirty = true
}

// Dirty reports whether pixels were written since the last Flush.
func (t *Target) Dirty() bool {
	return t.dirty
}

// Flush sends the display buffer to the screen if anything changed.
func (t *Target) Flush() error {
	if !t.dirty {
		return nil
	}
	if err := t.dev.Display(); err != nil {
		return err
	}
	t.dirty = false
	return nil
}
