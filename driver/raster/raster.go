// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster is a terminal gdi driver that draws onto any draw.Image.
//
// Pens are one pixel wide and brushes are solid or null. Pen and brush
// output is combined with the destination under the DC's ROP2. Fills are
// aliased: a pixel is painted when at least half of it is covered.
//
// Importing the package registers the driver as "raster":
//
//	import _ "github.com/gogpu/gdi/driver/raster"
//
//	dc, err := gdi.Open(img, []string{"raster"})
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/internal/scan"
)

var (
	// ErrNilTarget is returned by the registered factory for a nil target.
	ErrNilTarget = errors.New("raster: nil target image")

	// ErrSeedRejected is returned by ExtFloodFill when the seed pixel is
	// not part of the area to fill.
	ErrSeedRejected = errors.New("raster: flood fill seed is not inside the fill area")
)

func init() {
	gdi.Register("raster", func(target draw.Image) (gdi.Driver, error) {
		if target == nil {
			return nil, ErrNilTarget
		}
		return New(target), nil
	})
}

// rgbaSurface is implemented by *image.RGBA and *Pixmap.
type rgbaSurface interface {
	RGBAAt(x, y int) color.RGBA
	SetRGBA(x, y int, c color.RGBA)
}

// Driver draws onto a draw.Image. It implements every leaf capability;
// composite operations are left to the fallback layer.
type Driver struct {
	dst    draw.Image
	fast   rgbaSurface
	bounds image.Rectangle
	logger *slog.Logger
}

// New creates a driver drawing onto dst.
func New(dst draw.Image) *Driver {
	d := &Driver{
		dst:    dst,
		bounds: dst.Bounds(),
		logger: gdi.Logger(),
	}
	d.fast, _ = dst.(rgbaSurface)
	return d
}

// Name returns "raster".
func (*Driver) Name() string { return "raster" }

// SetLogger sets the logger used by the driver.
func (d *Driver) SetLogger(l *slog.Logger) {
	d.logger = l
}

// Target returns the image the driver draws onto.
func (d *Driver) Target() draw.Image {
	return d.dst
}

func (d *Driver) load(x, y int) color.RGBA {
	if d.fast != nil {
		return d.fast.RGBAAt(x, y)
	}
	return color.RGBAModel.Convert(d.dst.At(x, y)).(color.RGBA)
}

func (d *Driver) store(x, y int, c color.RGBA) {
	if d.fast != nil {
		d.fast.SetRGBA(x, y, c)
		return
	}
	d.dst.Set(x, y, c)
}

// mix combines c with the pixel at (x, y) under rop. Pixels outside the
// target are clipped.
func (d *Driver) mix(x, y int, c color.RGBA, rop gdi.ROP2) {
	if !image.Pt(x, y).In(d.bounds) {
		return
	}
	d.store(x, y, scan.Mix(uint8(rop), c, d.load(x, y)))
}

func sameColor(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
