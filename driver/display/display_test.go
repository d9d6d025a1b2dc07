// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/driver/raster"
)

// fakeDisplay is an in-memory drivers.Displayer.
type fakeDisplay struct {
	w, h     int16
	pix      map[image.Point]color.RGBA
	displays int
	err      error
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pix: map[image.Point]color.RGBA{}}
}

func (f *fakeDisplay) Size() (int16, int16) { return f.w, f.h }

func (f *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	f.pix[image.Pt(int(x), int(y))] = c
}

func (f *fakeDisplay) Display() error {
	f.displays++
	return f.err
}

func TestTargetBounds(t *testing.T) {
	tg := New(newFakeDisplay(32, 16))
	if got := tg.Bounds(); got != image.Rect(0, 0, 32, 16) {
		t.Errorf("Bounds() = %v, want (0,0)-(32,16)", got)
	}
}

func TestTargetSet(t *testing.T) {
	dev := newFakeDisplay(4, 4)
	tg := New(dev)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	tg.Set(1, 2, c)
	tg.Set(9, 9, c)

	if got := dev.pix[image.Pt(1, 2)]; got != c {
		t.Errorf("display pixel = %v, want %v", got, c)
	}
	if got := tg.RGBAAt(1, 2); got != c {
		t.Errorf("RGBAAt() = %v, want %v", got, c)
	}
	if len(dev.pix) != 1 {
		t.Errorf("display received %d pixels, want 1", len(dev.pix))
	}
}

func TestFlush(t *testing.T) {
	dev := newFakeDisplay(4, 4)
	tg := New(dev)
	if err := tg.Flush(); err != nil || dev.displays != 0 {
		t.Errorf("Flush() on clean target = %v with %d displays, want nil and 0", err, dev.displays)
	}

	tg.Set(0, 0, gdi.White)
	if !tg.Dirty() {
		t.Error("Dirty() = false after Set")
	}
	if err := tg.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if dev.displays != 1 || tg.Dirty() {
		t.Errorf("after Flush displays = %d, dirty = %v; want 1, false", dev.displays, tg.Dirty())
	}

	errBus := errors.New("spi: bus error")
	dev.err = errBus
	tg.Set(1, 1, gdi.White)
	if err := tg.Flush(); !errors.Is(err, errBus) {
		t.Errorf("Flush() error = %v, want bus error", err)
	}
	if !tg.Dirty() {
		t.Error("failed Flush cleared the dirty flag")
	}
}

func TestRasterOnDisplay(t *testing.T) {
	dev := newFakeDisplay(16, 16)
	tg := New(dev)
	dc, err := gdi.NewDC(gdi.WithDrivers(raster.New(tg)))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	dc.SelectPen(gdi.WhitePen)
	if err := dc.LineTo(8, 0); err != nil {
		t.Fatalf("LineTo() error = %v", err)
	}
	for x := 0; x < 8; x++ {
		if got := dev.pix[image.Pt(x, 0)]; got != gdi.White {
			t.Errorf("display pixel (%d,0) = %v, want white", x, got)
		}
	}
	if _, ok := dev.pix[image.Pt(8, 0)]; ok {
		t.Error("line end pixel was drawn")
	}
	if err := tg.Flush(); err != nil || dev.displays != 1 {
		t.Errorf("Flush() = %v with %d displays", err, dev.displays)
	}
}
