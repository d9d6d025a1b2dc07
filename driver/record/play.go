// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package record

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/region"
)

// Play replays the records of mf onto dc in order. It stops at the first
// failing record.
func Play(dc *gdi.DC, mf *Metafile) error {
	for i, r := range mf.Records {
		if err := play(dc, &r); err != nil {
			return fmt.Errorf("record: play record %d (%s): %w", i, r.Op, err)
		}
	}
	return nil
}

func play(dc *gdi.DC, r *Record) error {
	switch r.Op {
	case OpState:
		if r.State == nil {
			return fmt.Errorf("%w: state record without state", ErrUnknownOp)
		}
		return applyState(dc, r.State)
	case OpMoveTo:
		_, err := dc.MoveTo(r.Point.X, r.Point.Y)
		return err
	case OpLineTo:
		return dc.LineTo(r.Point.X, r.Point.Y)
	case OpArc:
		return dc.Arc(r.Rect, r.Start, r.End)
	case OpArcTo:
		return dc.ArcTo(r.Rect, r.Start, r.End)
	case OpChord:
		return dc.Chord(r.Rect, r.Start, r.End)
	case OpPie:
		return dc.Pie(r.Rect, r.Start, r.End)
	case OpAngleArc:
		return dc.AngleArc(r.Point, r.Radius, r.StartAngle, r.Sweep)
	case OpEllipse:
		return dc.Ellipse(r.Rect)
	case OpRectangle:
		return dc.Rectangle(r.Rect)
	case OpRoundRect:
		return dc.RoundRect(r.Rect, r.Size.X, r.Size.Y)
	case OpSetPixel:
		_, err := dc.SetPixel(r.Point.X, r.Point.Y, r.color())
		return err
	case OpPaintRgn:
		return dc.PaintRgn(region.New(r.Region...))
	case OpFillRgn:
		return dc.FillRgn(region.New(r.Region...), r.brush())
	case OpFrameRgn:
		return dc.FrameRgn(region.New(r.Region...), r.brush(), r.Size.X, r.Size.Y)
	case OpInvertRgn:
		return dc.InvertRgn(region.New(r.Region...))
	case OpPolyPolygon:
		return dc.PolyPolygon(r.Points, r.Counts)
	case OpPolyPolyline:
		return dc.PolyPolyline(r.Points, r.Counts)
	case OpPolyline:
		return dc.Polyline(r.Points)
	case OpPolygon:
		return dc.Polygon(r.Points)
	case OpPolyBezier:
		return dc.PolyBezier(r.Points)
	case OpPolyBezierTo:
		return dc.PolyBezierTo(r.Points)
	case OpPolylineTo:
		return dc.PolylineTo(r.Points)
	case OpPolyDraw:
		return dc.PolyDraw(r.Points, r.Types)
	case OpExtFloodFill:
		return dc.ExtFloodFill(r.Point.X, r.Point.Y, r.color(), gdi.FloodFillMode(r.Mode))
	case OpGradientFill:
		return dc.GradientFill(triVertices(r.Vertices), r.Mesh, gdi.GradientMode(r.Mode))
	case OpSetPixelFormat:
		return dc.SetPixelFormat(r.Format)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, r.Op)
}

func applyState(dc *gdi.DC, s *State) error {
	dc.SelectPen(s.Pen.pen())
	dc.SelectBrush(s.Brush.brush())
	if _, err := dc.SetROP2(s.ROP2); err != nil {
		return err
	}
	if _, err := dc.SetArcDirection(s.ArcDir); err != nil {
		return err
	}
	_, err := dc.SetPolyFillMode(s.FillMode)
	return err
}

func (r *Record) color() color.RGBA {
	if r.Color == nil {
		return gdi.Black
	}
	return color.RGBA(*r.Color)
}

func (r *Record) brush() gdi.Brush {
	if r.Brush == nil {
		return gdi.NullBrush
	}
	return r.Brush.brush()
}
