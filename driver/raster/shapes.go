// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	"github.com/gogpu/gdi"
)

// arcLine returns the flattened arc of the ellipse inscribed in r.
func arcLine(dc *gdi.DC, r image.Rectangle, start, end image.Point) ([]image.Point, error) {
	curve := gdi.ArcBeziers(r, start, end, dc.ArcDirection())
	if curve == nil {
		return nil, gdi.ErrDegenerateRect
	}
	return dc.Flattener().Flatten(curve)
}

// Arc strokes the arc with the pen.
func (d *Driver) Arc(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	dc := dev.DC()
	line, err := arcLine(dc, r, start, end)
	if err != nil {
		return err
	}
	d.stroke(dc, line)
	return nil
}

// Chord fills the arc closed by its chord and outlines it.
func (d *Driver) Chord(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	dc := dev.DC()
	line, err := arcLine(dc, r, start, end)
	if err != nil {
		return err
	}
	d.fillFigures(dc, [][]image.Point{line})
	d.outline(dc, line)
	return nil
}

// Pie fills the arc closed by two radii and outlines it.
func (d *Driver) Pie(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	dc := dev.DC()
	line, err := arcLine(dc, r, start, end)
	if err != nil {
		return err
	}
	cx, cy := gdi.EllipseCenter(r)
	fig := make([]image.Point, 0, len(line)+1)
	fig = append(fig, image.Pt(gdi.Round(cx), gdi.Round(cy)))
	fig = append(fig, line...)
	d.fillFigures(dc, [][]image.Point{fig})
	d.outline(dc, fig)
	return nil
}

// Ellipse fills and outlines the ellipse inscribed in r. An empty r draws
// nothing.
func (d *Driver) Ellipse(dev *gdi.Device, r image.Rectangle) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	dc := dev.DC()
	right := image.Pt(r.Max.X, r.Min.Y+r.Dy()/2)
	line, err := arcLine(dc, r, right, right)
	if err != nil {
		return err
	}
	d.fillFigures(dc, [][]image.Point{line})
	d.outline(dc, line)
	return nil
}

// Rectangle outlines r with the pen along its inner edge and fills the
// rest with the brush. With the null pen the brush covers all of r.
func (d *Driver) Rectangle(dev *gdi.Device, r image.Rectangle) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	dc := dev.DC()
	if dc.Pen().Style == gdi.PenNull {
		d.paintRect(dc, r)
		return nil
	}
	d.paintRect(dc, r.Inset(1))
	d.outline(dc, []image.Point{
		r.Min,
		{X: r.Max.X - 1, Y: r.Min.Y},
		{X: r.Max.X - 1, Y: r.Max.Y - 1},
		{X: r.Min.X, Y: r.Max.Y - 1},
	})
	return nil
}

// RoundRect draws r with each corner replaced by a quarter of an ellipse
// ellipseW by ellipseH pixels.
func (d *Driver) RoundRect(dev *gdi.Device, r image.Rectangle, ellipseW, ellipseH int) error {
	r = r.Canon()
	ew := min(abs(ellipseW), r.Dx())
	eh := min(abs(ellipseH), r.Dy())
	if ew < 2 || eh < 2 {
		return d.Rectangle(dev, r)
	}
	dc := dev.DC()

	// Corners counter-clockwise on screen, starting at the top right.
	p := gdi.NewPath()
	corner := func(cr image.Rectangle, from, to func(c, lo, hi image.Point) image.Point) {
		c := image.Pt(cr.Min.X+ew/2, cr.Min.Y+eh/2)
		p.ArcTo(cr, from(c, cr.Min, cr.Max), to(c, cr.Min, cr.Max), gdi.CounterClockwise)
	}
	right := func(c, _, hi image.Point) image.Point { return image.Pt(hi.X, c.Y) }
	top := func(c, lo, _ image.Point) image.Point { return image.Pt(c.X, lo.Y) }
	left := func(c, lo, _ image.Point) image.Point { return image.Pt(lo.X, c.Y) }
	bottom := func(c, _, hi image.Point) image.Point { return image.Pt(c.X, hi.Y) }

	corner(image.Rect(r.Max.X-ew, r.Min.Y, r.Max.X, r.Min.Y+eh), right, top)
	corner(image.Rect(r.Min.X, r.Min.Y, r.Min.X+ew, r.Min.Y+eh), top, left)
	corner(image.Rect(r.Min.X, r.Max.Y-eh, r.Min.X+ew, r.Max.Y), left, bottom)
	corner(image.Rect(r.Max.X-ew, r.Max.Y-eh, r.Max.X, r.Max.Y), bottom, right)
	p.Close()

	flat, err := p.Flatten(dc.Flattener(), r.Min)
	if err != nil {
		return err
	}
	fig := flat.Points()
	d.fillFigures(dc, [][]image.Point{fig})
	d.outline(dc, fig)
	return nil
}

func (d *Driver) paintRect(dc *gdi.DC, r image.Rectangle) {
	b := dc.Brush()
	if b.Style == gdi.BrushNull {
		return
	}
	rop := dc.ROP2()
	r = r.Intersect(d.bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d.mix(x, y, b.Color, rop)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
