// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/internal/scan"
	"github.com/gogpu/gdi/region"
)

// stroke draws the polyline through pts with the selected pen. The last
// point is not drawn, so a closed outline passes its first point again at
// the end.
func (d *Driver) stroke(dc *gdi.DC, pts []image.Point) {
	pen := dc.Pen()
	if pen.Style == gdi.PenNull {
		return
	}
	rop := dc.ROP2()
	plot := func(x, y int) { d.mix(x, y, pen.Color, rop) }
	for i := 1; i < len(pts); i++ {
		scan.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, plot)
	}
}

// outline strokes the closed figure pts.
func (d *Driver) outline(dc *gdi.DC, pts []image.Point) {
	if len(pts) < 2 {
		return
	}
	closed := make([]image.Point, 0, len(pts)+1)
	closed = append(closed, pts...)
	d.stroke(dc, append(closed, pts[0]))
}

// paintRegion paints rgn with b under the DC's ROP2.
func (d *Driver) paintRegion(dc *gdi.DC, rgn region.Region, b gdi.Brush) {
	if b.Style == gdi.BrushNull {
		return
	}
	rop := dc.ROP2()
	for _, r := range rgn.Intersect(region.Rect(d.bounds)).Rects() {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				d.mix(x, y, b.Color, rop)
			}
		}
	}
}

// fillFigures fills the closed figures with the selected brush using the
// nonzero winding rule.
func (d *Driver) fillFigures(dc *gdi.DC, figures [][]image.Point) {
	b := dc.Brush()
	if b.Style == gdi.BrushNull {
		return
	}
	var box image.Rectangle
	for _, f := range figures {
		for _, p := range f {
			box = box.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		}
	}
	box = box.Intersect(d.bounds)
	if box.Empty() {
		return
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	for _, f := range figures {
		if len(f) < 3 {
			continue
		}
		z.MoveTo(float32(f[0].X-box.Min.X), float32(f[0].Y-box.Min.Y))
		for _, p := range f[1:] {
			z.LineTo(float32(p.X-box.Min.X), float32(p.Y-box.Min.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	rop := dc.ROP2()
	for y := 0; y < box.Dy(); y++ {
		for x := 0; x < box.Dx(); x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				d.mix(box.Min.X+x, box.Min.Y+y, b.Color, rop)
			}
		}
	}
}

// figures splits pts by counts.
func figures(pts []image.Point, counts []int) [][]image.Point {
	out := make([][]image.Point, 0, len(counts))
	i := 0
	for _, n := range counts {
		out = append(out, pts[i:i+n])
		i += n
	}
	return out
}

// MoveTo has nothing to draw.
func (*Driver) MoveTo(*gdi.Device, int, int) error { return nil }

// LineTo draws from the current position to (x, y), excluding (x, y).
func (d *Driver) LineTo(dev *gdi.Device, x, y int) error {
	dc := dev.DC()
	d.stroke(dc, []image.Point{dc.CurrentPosition(), image.Pt(x, y)})
	return nil
}

// PolyPolyline strokes each figure as an open polyline.
func (d *Driver) PolyPolyline(dev *gdi.Device, pts []image.Point, counts []int) error {
	dc := dev.DC()
	for _, f := range figures(pts, counts) {
		d.stroke(dc, f)
	}
	return nil
}

// PolyPolygon fills the polygons with the DC's fill mode, then outlines
// each of them.
func (d *Driver) PolyPolygon(dev *gdi.Device, pts []image.Point, counts []int) error {
	dc := dev.DC()
	figs := figures(pts, counts)
	if dc.PolyFillMode() == region.Alternate {
		d.paintRegion(dc, region.FromPolygons(pts, counts, region.Alternate), dc.Brush())
	} else {
		d.fillFigures(dc, figs)
	}
	for _, f := range figs {
		d.outline(dc, f)
	}
	return nil
}

// PaintRgn paints rgn with the selected brush.
func (d *Driver) PaintRgn(dev *gdi.Device, rgn region.Region) error {
	dc := dev.DC()
	d.paintRegion(dc, rgn, dc.Brush())
	return nil
}
