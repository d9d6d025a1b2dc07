// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/internal/scan"
)

// SetPixel stores c at (x, y), ignoring the ROP2, and returns the color
// read back from the target.
func (d *Driver) SetPixel(_ *gdi.Device, x, y int, c color.RGBA) (color.RGBA, error) {
	if !image.Pt(x, y).In(d.bounds) {
		return color.RGBA{}, gdi.ErrOutOfBounds
	}
	d.store(x, y, c)
	return d.load(x, y), nil
}

// GetPixel returns the color at (x, y).
func (d *Driver) GetPixel(_ *gdi.Device, x, y int) (color.RGBA, error) {
	if !image.Pt(x, y).In(d.bounds) {
		return color.RGBA{}, gdi.ErrOutOfBounds
	}
	return d.load(x, y), nil
}

// ExtFloodFill paints the 4-connected area around (x, y) with the brush.
// Colors are compared on their RGB channels.
func (d *Driver) ExtFloodFill(dev *gdi.Device, x, y int, c color.RGBA, mode gdi.FloodFillMode) error {
	if !image.Pt(x, y).In(d.bounds) {
		return gdi.ErrOutOfBounds
	}
	inside := func(px, py int) bool { return !sameColor(d.load(px, py), c) }
	if mode == gdi.FloodFillSurface {
		inside = func(px, py int) bool { return sameColor(d.load(px, py), c) }
	}
	spans := scan.Flood(d.bounds, image.Pt(x, y), inside)
	if spans == nil {
		return ErrSeedRejected
	}

	dc := dev.DC()
	b := dc.Brush()
	if b.Style == gdi.BrushNull {
		return nil
	}
	rop := dc.ROP2()
	for _, s := range spans {
		for px := s.X0; px < s.X1; px++ {
			d.mix(px, s.Y, b.Color, rop)
		}
	}
	return nil
}

// SetPixelFormat accepts the 8-bit RGBA formats the target stores.
func (d *Driver) SetPixelFormat(_ *gdi.Device, f gputypes.TextureFormat) error {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return nil
	}
	d.logger.Debug("raster: pixel format rejected", "format", f)
	return fmt.Errorf("%w: raster target cannot store %v", gdi.ErrNotSupported, f)
}
