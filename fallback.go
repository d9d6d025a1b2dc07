package gdi

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi/region"
)

// fallback is the bottom layer of every driver chain. It implements every
// capability: composite operations are rebuilt from simpler ones
// dispatched from the top of the chain, and the remaining leaf operations
// behave like a null device that accepts everything and draws nothing.
//
// Fallback methods never update the current position and restore any DC
// state they change before returning.
type fallback struct{}

func (fallback) Name() string { return "fallback" }

func synthesize(dev *Device, op string) (*DC, *Device) {
	Logger().Debug("gdi: synthesizing", "op", op)
	dc := dev.DC()
	return dc, dc.Device()
}

// ArcTo draws a line to the point where the ray through start meets the
// ellipse, then the arc.
func (fallback) ArcTo(dev *Device, r image.Rectangle, start, end image.Point) error {
	if degenerate(r) {
		return ErrDegenerateRect
	}
	_, top := synthesize(dev, "ArcTo")
	p := PointOnEllipse(r, EllipseAngle(r, start))
	if err := top.LineTo(p.X, p.Y); err != nil {
		return err
	}
	return top.Arc(r, start, end)
}

// AngleArc draws the arc with ArcTo on the circle's bounding square, in
// the direction given by the sign of sweep.
func (fallback) AngleArc(dev *Device, center image.Point, radius int, start, sweep float64) error {
	if radius < 0 {
		return ErrInvalidArgument
	}
	dc, top := synthesize(dev, "AngleArc")
	p1 := AngleArcPoint(center, radius, start)
	p2 := AngleArcPoint(center, radius, start+sweep)
	r := image.Rect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)

	prev := dc.arcDir
	if sweep >= 0 {
		dc.arcDir = CounterClockwise
	} else {
		dc.arcDir = Clockwise
	}
	defer func() { dc.arcDir = prev }()

	return top.ArcTo(r, p1, p2)
}

// FillRgn paints rgn after selecting b.
func (fallback) FillRgn(dev *Device, rgn region.Region, b Brush) error {
	dc, top := synthesize(dev, "FillRgn")
	prev := dc.SelectBrush(b)
	defer dc.SelectBrush(prev)
	return top.PaintRgn(rgn)
}

// FrameRgn fills the frame of rgn.
func (fallback) FrameRgn(dev *Device, rgn region.Region, b Brush, w, h int) error {
	if w < 0 || h < 0 {
		return ErrInvalidArgument
	}
	_, top := synthesize(dev, "FrameRgn")
	return top.FillRgn(rgn.Frame(w, h), b)
}

// InvertRgn fills rgn with the black brush under ROP2Not.
func (fallback) InvertRgn(dev *Device, rgn region.Region) error {
	dc, top := synthesize(dev, "InvertRgn")
	prev := dc.rop
	dc.rop = ROP2Not
	defer func() { dc.rop = prev }()
	return top.FillRgn(rgn, BlackBrush)
}

// PolyBezier strokes the flattened curve.
func (fallback) PolyBezier(dev *Device, pts []image.Point) error {
	dc, top := synthesize(dev, "PolyBezier")
	line, err := dc.flat.Flatten(pts)
	if err != nil {
		return err
	}
	return top.Polyline(line)
}

// PolyBezierTo strokes the flattened curve starting at the current
// position.
func (fallback) PolyBezierTo(dev *Device, pts []image.Point) error {
	if len(pts) == 0 || len(pts)%3 != 0 {
		return ErrInvalidPointCount
	}
	dc, top := synthesize(dev, "PolyBezierTo")
	line, err := dc.flat.Flatten(withAnchor(dc.pos, pts))
	if err != nil {
		return err
	}
	return top.Polyline(line)
}

// PolylineTo strokes a polyline starting at the current position.
func (fallback) PolylineTo(dev *Device, pts []image.Point) error {
	if len(pts) == 0 {
		return ErrInvalidPointCount
	}
	dc, top := synthesize(dev, "PolylineTo")
	return top.Polyline(withAnchor(dc.pos, pts))
}

// PolyDraw strokes the tagged points figure by figure.
func (fallback) PolyDraw(dev *Device, pts []image.Point, types []PointType) error {
	if len(pts) != len(types) {
		return ErrInvalidPointCount
	}
	if err := ValidatePointTypes(types); err != nil {
		return err
	}
	dc, top := synthesize(dev, "PolyDraw")
	return strokeTagged(top, dc.pos, pts, types, dc.flat)
}

// Polyline is PolyPolyline with a single figure.
func (fallback) Polyline(dev *Device, pts []image.Point) error {
	if len(pts) < 2 {
		return ErrInvalidPointCount
	}
	_, top := synthesize(dev, "Polyline")
	return top.PolyPolyline(pts, []int{len(pts)})
}

// Polygon is PolyPolygon with a single figure.
func (fallback) Polygon(dev *Device, pts []image.Point) error {
	if len(pts) < 2 {
		return ErrInvalidPointCount
	}
	_, top := synthesize(dev, "Polygon")
	return top.PolyPolygon(pts, []int{len(pts)})
}

// Null device leaves.

func (fallback) MoveTo(*Device, int, int) error { return nil }
func (fallback) LineTo(*Device, int, int) error { return nil }

func (fallback) Arc(*Device, image.Rectangle, image.Point, image.Point) error   { return nil }
func (fallback) Chord(*Device, image.Rectangle, image.Point, image.Point) error { return nil }
func (fallback) Pie(*Device, image.Rectangle, image.Point, image.Point) error   { return nil }

func (fallback) Ellipse(*Device, image.Rectangle) error             { return nil }
func (fallback) Rectangle(*Device, image.Rectangle) error           { return nil }
func (fallback) RoundRect(*Device, image.Rectangle, int, int) error { return nil }

func (fallback) SetPixel(_ *Device, _, _ int, c color.RGBA) (color.RGBA, error) { return c, nil }
func (fallback) GetPixel(*Device, int, int) (color.RGBA, error) {
	return color.RGBA{}, ErrNotSupported
}

func (fallback) PaintRgn(*Device, region.Region) error { return nil }

func (fallback) PolyPolygon(*Device, []image.Point, []int) error  { return nil }
func (fallback) PolyPolyline(*Device, []image.Point, []int) error { return nil }

func (fallback) ExtFloodFill(*Device, int, int, color.RGBA, FloodFillMode) error { return nil }

func (fallback) GradientFill(*Device, []TriVertex, []int, GradientMode) error { return nil }

func (fallback) SetPixelFormat(*Device, gputypes.TextureFormat) error { return nil }

func withAnchor(anchor image.Point, pts []image.Point) []image.Point {
	out := make([]image.Point, 0, len(pts)+1)
	out = append(out, anchor)
	return append(out, pts...)
}
