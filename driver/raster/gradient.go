// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/gdi"
)

// GradientFill fills rectangles or triangles with colors interpolated
// between their vertices. The ROP2 does not apply.
func (d *Driver) GradientFill(_ *gdi.Device, verts []gdi.TriVertex, mesh []int, mode gdi.GradientMode) error {
	switch mode {
	case gdi.GradientRectH, gdi.GradientRectV:
		for i := 0; i+1 < len(mesh); i += 2 {
			d.gradientRect(verts[mesh[i]], verts[mesh[i+1]], mode == gdi.GradientRectV)
		}
	case gdi.GradientTriangle:
		for i := 0; i+2 < len(mesh); i += 3 {
			d.gradientTriangle(verts[mesh[i]], verts[mesh[i+1]], verts[mesh[i+2]])
		}
	default:
		return gdi.ErrInvalidArgument
	}
	return nil
}

func (d *Driver) gradientRect(a, b gdi.TriVertex, vertical bool) {
	r := image.Rect(a.X, a.Y, b.X, b.Y).Intersect(d.bounds)
	lo, hi := a.X, b.X
	if vertical {
		lo, hi = a.Y, b.Y
	}
	if lo > hi {
		lo, hi = hi, lo
		a, b = b, a
	}
	span := int64(hi - lo)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t := x
			if vertical {
				t = y
			}
			c := a.Color
			if span > 0 {
				c = lerp64(a.Color, b.Color, int64(t-lo), span)
			}
			d.store(x, y, to8(c))
		}
	}
}

func (d *Driver) gradientTriangle(a, b, c gdi.TriVertex) {
	pa, pb, pc := image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), image.Pt(c.X, c.Y)
	area := edge(pa, pb, pc)
	if area == 0 {
		return
	}
	box := image.Rect(
		min(pa.X, pb.X, pc.X), min(pa.Y, pb.Y, pc.Y),
		max(pa.X, pb.X, pc.X)+1, max(pa.Y, pb.Y, pc.Y)+1,
	).Intersect(d.bounds)

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			p := image.Pt(x, y)
			w0, w1, w2 := edge(pb, pc, p), edge(pc, pa, p), edge(pa, pb, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			d.store(x, y, to8(blend3(a.Color, b.Color, c.Color, w0, w1, w2)))
		}
	}
}

// edge is twice the signed area of the triangle a, b, p.
func edge(a, b, p image.Point) int64 {
	return int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
}

func lerp64(a, b color.RGBA64, num, den int64) color.RGBA64 {
	ch := func(x, y uint16) uint16 {
		return uint16(int64(x) + (int64(y)-int64(x))*num/den)
	}
	return color.RGBA64{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func blend3(a, b, c color.RGBA64, wa, wb, wc int64) color.RGBA64 {
	sum := wa + wb + wc
	ch := func(x, y, z uint16) uint16 {
		return uint16((int64(x)*wa + int64(y)*wb + int64(z)*wc) / sum)
	}
	return color.RGBA64{R: ch(a.R, b.R, c.R), G: ch(a.G, b.G, c.G), B: ch(a.B, b.B, c.B), A: ch(a.A, b.A, c.A)}
}

// to8 keeps the high byte of each channel. The result is opaque.
func to8(c color.RGBA64) color.RGBA {
	return color.RGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: 0xff}
}
