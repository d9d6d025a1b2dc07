// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package record is a pass-through gdi driver that records drawing
// operations into a Metafile.
//
// Install it above the driver that does the drawing. Each operation issued
// through the DC is recorded once, together with the drawing state it
// depends on, and forwarded to the next layer. Operations that the
// fallback layer synthesizes from simpler ones are forwarded without being
// recorded again. Failed operations are not recorded, except a PolyDraw
// that stroked some figures before failing; replaying it draws all of them.
//
//	rec := record.New()
//	dc, _ := gdi.NewDC(gdi.WithDrivers(rec, raster.New(img)))
//	dc.PolyBezier(pts)
//	rec.Metafile().WriteTo(os.Stdout)
//
// Importing the package registers the driver as "record".
package record

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/region"
)

func init() {
	gdi.Register("record", func(draw.Image) (gdi.Driver, error) {
		return New(), nil
	})
}

// Driver records every operation passing through it.
type Driver struct {
	records []Record
	last    *State
	depth   int
	logger  *slog.Logger
}

// New creates an empty recorder.
func New() *Driver {
	return &Driver{logger: gdi.Logger()}
}

// Name returns "record".
func (*Driver) Name() string { return "record" }

// SetLogger sets the logger used by the driver.
func (d *Driver) SetLogger(l *slog.Logger) {
	d.logger = l
}

// Len returns the number of records, state records included.
func (d *Driver) Len() int {
	return len(d.records)
}

// Metafile returns a copy of the records made so far.
func (d *Driver) Metafile() *Metafile {
	return &Metafile{Version: Version, Records: slices.Clone(d.records)}
}

// Reset discards all records.
func (d *Driver) Reset() {
	d.records = nil
	d.last = nil
}

func snapshot(dc *gdi.DC) State {
	return State{
		Pen:      penPaint(dc.Pen()),
		Brush:    brushPaint(dc.Brush()),
		ROP2:     dc.ROP2(),
		ArcDir:   dc.ArcDirection(),
		FillMode: dc.PolyFillMode(),
	}
}

// do forwards an operation to the next layer and, if it came from outside
// the chain and drew anything, records it.
func (d *Driver) do(dev *gdi.Device, rec Record, forward func(next *gdi.Device) error) error {
	outer := d.depth == 0
	var st State
	if outer {
		st = snapshot(dev.DC())
	}
	d.depth++
	err := forward(dev.Next())
	d.depth--
	if !outer || (err != nil && !partial(err)) {
		return err
	}
	if d.last == nil || *d.last != st {
		d.records = append(d.records, Record{Op: OpState, State: &st})
		d.last = &st
	}
	d.records = append(d.records, rec)
	d.logger.Debug("record: recorded", "op", rec.Op, "records", len(d.records))
	return err
}

// partial reports whether err comes from a stroke that drew some figures
// before failing.
func partial(err error) bool {
	var se *gdi.StrokeError
	return errors.As(err, &se) && se.Drawn
}

func (d *Driver) MoveTo(dev *gdi.Device, x, y int) error {
	return d.do(dev, Record{Op: OpMoveTo, Point: image.Pt(x, y)}, func(next *gdi.Device) error {
		return next.MoveTo(x, y)
	})
}

func (d *Driver) LineTo(dev *gdi.Device, x, y int) error {
	return d.do(dev, Record{Op: OpLineTo, Point: image.Pt(x, y)}, func(next *gdi.Device) error {
		return next.LineTo(x, y)
	})
}

func (d *Driver) Arc(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	return d.do(dev, Record{Op: OpArc, Rect: r, Start: start, End: end}, func(next *gdi.Device) error {
		return next.Arc(r, start, end)
	})
}

func (d *Driver) Chord(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	return d.do(dev, Record{Op: OpChord, Rect: r, Start: start, End: end}, func(next *gdi.Device) error {
		return next.Chord(r, start, end)
	})
}

func (d *Driver) Pie(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	return d.do(dev, Record{Op: OpPie, Rect: r, Start: start, End: end}, func(next *gdi.Device) error {
		return next.Pie(r, start, end)
	})
}

func (d *Driver) ArcTo(dev *gdi.Device, r image.Rectangle, start, end image.Point) error {
	return d.do(dev, Record{Op: OpArcTo, Rect: r, Start: start, End: end}, func(next *gdi.Device) error {
		return next.ArcTo(r, start, end)
	})
}

func (d *Driver) AngleArc(dev *gdi.Device, center image.Point, radius int, start, sweep float64) error {
	rec := Record{Op: OpAngleArc, Point: center, Radius: radius, StartAngle: start, Sweep: sweep}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.AngleArc(center, radius, start, sweep)
	})
}

func (d *Driver) Ellipse(dev *gdi.Device, r image.Rectangle) error {
	return d.do(dev, Record{Op: OpEllipse, Rect: r}, func(next *gdi.Device) error {
		return next.Ellipse(r)
	})
}

func (d *Driver) Rectangle(dev *gdi.Device, r image.Rectangle) error {
	return d.do(dev, Record{Op: OpRectangle, Rect: r}, func(next *gdi.Device) error {
		return next.Rectangle(r)
	})
}

func (d *Driver) RoundRect(dev *gdi.Device, r image.Rectangle, ellipseW, ellipseH int) error {
	rec := Record{Op: OpRoundRect, Rect: r, Size: image.Pt(ellipseW, ellipseH)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.RoundRect(r, ellipseW, ellipseH)
	})
}

// SetPixel records the requested color and returns the stored one.
func (d *Driver) SetPixel(dev *gdi.Device, x, y int, c color.RGBA) (color.RGBA, error) {
	var stored color.RGBA
	col := Color(c)
	err := d.do(dev, Record{Op: OpSetPixel, Point: image.Pt(x, y), Color: &col}, func(next *gdi.Device) error {
		var err error
		stored, err = next.SetPixel(x, y, c)
		return err
	})
	return stored, err
}

// GetPixel is forwarded without being recorded.
func (d *Driver) GetPixel(dev *gdi.Device, x, y int) (color.RGBA, error) {
	return dev.Next().GetPixel(x, y)
}

func (d *Driver) PaintRgn(dev *gdi.Device, rgn region.Region) error {
	return d.do(dev, Record{Op: OpPaintRgn, Region: rgn.Rects()}, func(next *gdi.Device) error {
		return next.PaintRgn(rgn)
	})
}

func (d *Driver) FillRgn(dev *gdi.Device, rgn region.Region, b gdi.Brush) error {
	p := brushPaint(b)
	return d.do(dev, Record{Op: OpFillRgn, Region: rgn.Rects(), Brush: &p}, func(next *gdi.Device) error {
		return next.FillRgn(rgn, b)
	})
}

func (d *Driver) FrameRgn(dev *gdi.Device, rgn region.Region, b gdi.Brush, w, h int) error {
	p := brushPaint(b)
	rec := Record{Op: OpFrameRgn, Region: rgn.Rects(), Brush: &p, Size: image.Pt(w, h)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.FrameRgn(rgn, b, w, h)
	})
}

func (d *Driver) InvertRgn(dev *gdi.Device, rgn region.Region) error {
	return d.do(dev, Record{Op: OpInvertRgn, Region: rgn.Rects()}, func(next *gdi.Device) error {
		return next.InvertRgn(rgn)
	})
}

func (d *Driver) PolyPolygon(dev *gdi.Device, pts []image.Point, counts []int) error {
	rec := Record{Op: OpPolyPolygon, Points: slices.Clone(pts), Counts: slices.Clone(counts)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.PolyPolygon(pts, counts)
	})
}

func (d *Driver) PolyPolyline(dev *gdi.Device, pts []image.Point, counts []int) error {
	rec := Record{Op: OpPolyPolyline, Points: slices.Clone(pts), Counts: slices.Clone(counts)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.PolyPolyline(pts, counts)
	})
}

func (d *Driver) Polyline(dev *gdi.Device, pts []image.Point) error {
	return d.do(dev, Record{Op: OpPolyline, Points: slices.Clone(pts)}, func(next *gdi.Device) error {
		return next.Polyline(pts)
	})
}

func (d *Driver) Polygon(dev *gdi.Device, pts []image.Point) error {
	return d.do(dev, Record{Op: OpPolygon, Points: slices.Clone(pts)}, func(next *gdi.Device) error {
		return next.Polygon(pts)
	})
}

func (d *Driver) PolyBezier(dev *gdi.Device, pts []image.Point) error {
	return d.do(dev, Record{Op: OpPolyBezier, Points: slices.Clone(pts)}, func(next *gdi.Device) error {
		return next.PolyBezier(pts)
	})
}

func (d *Driver) PolyBezierTo(dev *gdi.Device, pts []image.Point) error {
	return d.do(dev, Record{Op: OpPolyBezierTo, Points: slices.Clone(pts)}, func(next *gdi.Device) error {
		return next.PolyBezierTo(pts)
	})
}

func (d *Driver) PolylineTo(dev *gdi.Device, pts []image.Point) error {
	return d.do(dev, Record{Op: OpPolylineTo, Points: slices.Clone(pts)}, func(next *gdi.Device) error {
		return next.PolylineTo(pts)
	})
}

func (d *Driver) PolyDraw(dev *gdi.Device, pts []image.Point, types []gdi.PointType) error {
	rec := Record{Op: OpPolyDraw, Points: slices.Clone(pts), Types: slices.Clone(types)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.PolyDraw(pts, types)
	})
}

func (d *Driver) ExtFloodFill(dev *gdi.Device, x, y int, c color.RGBA, mode gdi.FloodFillMode) error {
	col := Color(c)
	rec := Record{Op: OpExtFloodFill, Point: image.Pt(x, y), Color: &col, Mode: int(mode)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.ExtFloodFill(x, y, c, mode)
	})
}

func (d *Driver) GradientFill(dev *gdi.Device, verts []gdi.TriVertex, mesh []int, mode gdi.GradientMode) error {
	rec := Record{Op: OpGradientFill, Vertices: vertices(verts), Mesh: slices.Clone(mesh), Mode: int(mode)}
	return d.do(dev, rec, func(next *gdi.Device) error {
		return next.GradientFill(verts, mesh, mode)
	})
}

func (d *Driver) SetPixelFormat(dev *gdi.Device, f gputypes.TextureFormat) error {
	return d.do(dev, Record{Op: OpSetPixelFormat, Format: f}, func(next *gdi.Device) error {
		return next.SetPixelFormat(f)
	})
}
