package gdi

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi/region"
)

// Device is one installed layer of a DC's driver chain.
//
// Calling an operation on a Device runs it on the nearest layer at or below
// that Device whose driver implements the capability. Drivers receive the
// Device they are installed at and forward with dev.Next().
type Device struct {
	dc   *DC
	drv  Driver
	next *Device
}

// DC returns the device context that owns the chain.
func (d *Device) DC() *DC { return d.dc }

// Driver returns the driver installed at this layer.
func (d *Device) Driver() Driver { return d.drv }

// Next returns the layer below d, or nil for the bottom layer.
func (d *Device) Next() *Device { return d.next }

// resolve finds the nearest layer at or below d whose driver implements T.
// A chain without such a layer is malformed; resolve panics in that case.
func resolve[T any](d *Device, op string) (T, *Device) {
	for l := d; l != nil; l = l.next {
		if impl, ok := l.drv.(T); ok {
			return impl, l
		}
	}
	panic(fmt.Errorf("%w: %s", ErrNoCapability, op))
}

// MoveTo dispatches MoveTo.
func (d *Device) MoveTo(x, y int) error {
	impl, at := resolve[LineDriver](d, "MoveTo")
	return impl.MoveTo(at, x, y)
}

// LineTo dispatches LineTo.
func (d *Device) LineTo(x, y int) error {
	impl, at := resolve[LineDriver](d, "LineTo")
	return impl.LineTo(at, x, y)
}

// Arc dispatches Arc.
func (d *Device) Arc(r image.Rectangle, start, end image.Point) error {
	impl, at := resolve[ArcDriver](d, "Arc")
	return impl.Arc(at, r, start, end)
}

// Chord dispatches Chord.
func (d *Device) Chord(r image.Rectangle, start, end image.Point) error {
	impl, at := resolve[ArcDriver](d, "Chord")
	return impl.Chord(at, r, start, end)
}

// Pie dispatches Pie.
func (d *Device) Pie(r image.Rectangle, start, end image.Point) error {
	impl, at := resolve[ArcDriver](d, "Pie")
	return impl.Pie(at, r, start, end)
}

// ArcTo dispatches ArcTo.
func (d *Device) ArcTo(r image.Rectangle, start, end image.Point) error {
	impl, at := resolve[ArcToDriver](d, "ArcTo")
	return impl.ArcTo(at, r, start, end)
}

// AngleArc dispatches AngleArc.
func (d *Device) AngleArc(center image.Point, radius int, start, sweep float64) error {
	impl, at := resolve[AngleArcDriver](d, "AngleArc")
	return impl.AngleArc(at, center, radius, start, sweep)
}

// Ellipse dispatches Ellipse.
func (d *Device) Ellipse(r image.Rectangle) error {
	impl, at := resolve[ShapeDriver](d, "Ellipse")
	return impl.Ellipse(at, r)
}

// Rectangle dispatches Rectangle.
func (d *Device) Rectangle(r image.Rectangle) error {
	impl, at := resolve[ShapeDriver](d, "Rectangle")
	return impl.Rectangle(at, r)
}

// RoundRect dispatches RoundRect.
func (d *Device) RoundRect(r image.Rectangle, ellipseW, ellipseH int) error {
	impl, at := resolve[ShapeDriver](d, "RoundRect")
	return impl.RoundRect(at, r, ellipseW, ellipseH)
}

// SetPixel dispatches SetPixel.
func (d *Device) SetPixel(x, y int, c color.RGBA) (color.RGBA, error) {
	impl, at := resolve[PixelDriver](d, "SetPixel")
	return impl.SetPixel(at, x, y, c)
}

// GetPixel dispatches GetPixel.
func (d *Device) GetPixel(x, y int) (color.RGBA, error) {
	impl, at := resolve[PixelDriver](d, "GetPixel")
	return impl.GetPixel(at, x, y)
}

// PaintRgn dispatches PaintRgn.
func (d *Device) PaintRgn(rgn region.Region) error {
	impl, at := resolve[PaintRgnDriver](d, "PaintRgn")
	return impl.PaintRgn(at, rgn)
}

// FillRgn dispatches FillRgn.
func (d *Device) FillRgn(rgn region.Region, b Brush) error {
	impl, at := resolve[RegionDriver](d, "FillRgn")
	return impl.FillRgn(at, rgn, b)
}

// FrameRgn dispatches FrameRgn.
func (d *Device) FrameRgn(rgn region.Region, b Brush, w, h int) error {
	impl, at := resolve[RegionDriver](d, "FrameRgn")
	return impl.FrameRgn(at, rgn, b, w, h)
}

// InvertRgn dispatches InvertRgn.
func (d *Device) InvertRgn(rgn region.Region) error {
	impl, at := resolve[RegionDriver](d, "InvertRgn")
	return impl.InvertRgn(at, rgn)
}

// PolyPolygon dispatches PolyPolygon.
func (d *Device) PolyPolygon(pts []image.Point, counts []int) error {
	impl, at := resolve[PolyDriver](d, "PolyPolygon")
	return impl.PolyPolygon(at, pts, counts)
}

// PolyPolyline dispatches PolyPolyline.
func (d *Device) PolyPolyline(pts []image.Point, counts []int) error {
	impl, at := resolve[PolyDriver](d, "PolyPolyline")
	return impl.PolyPolyline(at, pts, counts)
}

// Polyline dispatches Polyline.
func (d *Device) Polyline(pts []image.Point) error {
	impl, at := resolve[PolylineDriver](d, "Polyline")
	return impl.Polyline(at, pts)
}

// Polygon dispatches Polygon.
func (d *Device) Polygon(pts []image.Point) error {
	impl, at := resolve[PolylineDriver](d, "Polygon")
	return impl.Polygon(at, pts)
}

// PolyBezier dispatches PolyBezier.
func (d *Device) PolyBezier(pts []image.Point) error {
	impl, at := resolve[BezierDriver](d, "PolyBezier")
	return impl.PolyBezier(at, pts)
}

// PolyBezierTo dispatches PolyBezierTo.
func (d *Device) PolyBezierTo(pts []image.Point) error {
	impl, at := resolve[BezierDriver](d, "PolyBezierTo")
	return impl.PolyBezierTo(at, pts)
}

// PolylineTo dispatches PolylineTo.
func (d *Device) PolylineTo(pts []image.Point) error {
	impl, at := resolve[PolylineToDriver](d, "PolylineTo")
	return impl.PolylineTo(at, pts)
}

// PolyDraw dispatches PolyDraw.
func (d *Device) PolyDraw(pts []image.Point, types []PointType) error {
	impl, at := resolve[PolyDrawDriver](d, "PolyDraw")
	return impl.PolyDraw(at, pts, types)
}

// ExtFloodFill dispatches ExtFloodFill.
func (d *Device) ExtFloodFill(x, y int, c color.RGBA, mode FloodFillMode) error {
	impl, at := resolve[FloodFillDriver](d, "ExtFloodFill")
	return impl.ExtFloodFill(at, x, y, c, mode)
}

// GradientFill dispatches GradientFill.
func (d *Device) GradientFill(verts []TriVertex, mesh []int, mode GradientMode) error {
	impl, at := resolve[GradientDriver](d, "GradientFill")
	return impl.GradientFill(at, verts, mesh, mode)
}

// SetPixelFormat dispatches SetPixelFormat.
func (d *Device) SetPixelFormat(f gputypes.TextureFormat) error {
	impl, at := resolve[PixelFormatDriver](d, "SetPixelFormat")
	return impl.SetPixelFormat(at, f)
}
