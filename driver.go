package gdi

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi/region"
)

// Driver is one layer of a DC's driver chain.
//
// A driver advertises the operations it performs by implementing any of the
// capability interfaces below. Operations it does not implement are resolved
// further down the chain, ending at the built-in fallback layer which
// implements every capability. Each capability method receives the Device
// the driver is installed at; a driver that wants to pass an operation on
// calls the same method on dev.Next().
//
// Drivers never update the DC's current position. The DC does that after an
// operation succeeds.
type Driver interface {
	// Name returns a short identifier used in logs and by the registry.
	Name() string
}

// LineDriver strokes straight lines with the selected pen. LineTo draws
// from the DC's current position to (x, y), excluding the end pixel.
type LineDriver interface {
	MoveTo(dev *Device, x, y int) error
	LineTo(dev *Device, x, y int) error
}

// ArcDriver strokes elliptical arcs inscribed in r, from the ray through
// start to the ray through end in the DC's arc direction. Chord closes the
// arc with a straight line and Pie with two radii; both fill with the
// selected brush.
type ArcDriver interface {
	Arc(dev *Device, r image.Rectangle, start, end image.Point) error
	Chord(dev *Device, r image.Rectangle, start, end image.Point) error
	Pie(dev *Device, r image.Rectangle, start, end image.Point) error
}

// ArcToDriver draws a line from the current position to the start of the
// arc, then the arc itself.
type ArcToDriver interface {
	ArcTo(dev *Device, r image.Rectangle, start, end image.Point) error
}

// AngleArcDriver draws a line and a circular arc given by center, radius
// and angles in degrees.
type AngleArcDriver interface {
	AngleArc(dev *Device, center image.Point, radius int, start, sweep float64) error
}

// ShapeDriver draws closed shapes outlined with the pen and filled with the
// brush.
type ShapeDriver interface {
	Ellipse(dev *Device, r image.Rectangle) error
	Rectangle(dev *Device, r image.Rectangle) error
	RoundRect(dev *Device, r image.Rectangle, ellipseW, ellipseH int) error
}

// PixelDriver reads and writes single pixels. SetPixel returns the color
// actually stored.
type PixelDriver interface {
	SetPixel(dev *Device, x, y int, c color.RGBA) (color.RGBA, error)
	GetPixel(dev *Device, x, y int) (color.RGBA, error)
}

// PaintRgnDriver paints a region with the selected brush and ROP2.
type PaintRgnDriver interface {
	PaintRgn(dev *Device, rgn region.Region) error
}

// RegionDriver fills, frames and inverts regions.
type RegionDriver interface {
	FillRgn(dev *Device, rgn region.Region, b Brush) error
	FrameRgn(dev *Device, rgn region.Region, b Brush, w, h int) error
	InvertRgn(dev *Device, rgn region.Region) error
}

// PolyDriver draws several polygons or polylines in one call. pts holds all
// figures back to back; counts holds the number of points of each figure.
// Counts are validated by the DC before a driver sees them.
type PolyDriver interface {
	PolyPolygon(dev *Device, pts []image.Point, counts []int) error
	PolyPolyline(dev *Device, pts []image.Point, counts []int) error
}

// PolylineDriver draws a single polyline or polygon.
type PolylineDriver interface {
	Polyline(dev *Device, pts []image.Point) error
	Polygon(dev *Device, pts []image.Point) error
}

// BezierDriver strokes chains of cubic Bezier curves. PolyBezierTo uses
// the DC's current position as the first control point.
type BezierDriver interface {
	PolyBezier(dev *Device, pts []image.Point) error
	PolyBezierTo(dev *Device, pts []image.Point) error
}

// PolylineToDriver strokes a polyline starting at the current position.
type PolylineToDriver interface {
	PolylineTo(dev *Device, pts []image.Point) error
}

// PolyDrawDriver strokes a sequence of tagged points. The types have
// already been checked with ValidatePointTypes.
type PolyDrawDriver interface {
	PolyDraw(dev *Device, pts []image.Point, types []PointType) error
}

// FloodFillDriver fills the area connected to (x, y).
type FloodFillDriver interface {
	ExtFloodFill(dev *Device, x, y int, c color.RGBA, mode FloodFillMode) error
}

// GradientDriver fills rectangles or triangles with interpolated colors.
// mesh holds vertex indices, mode.MeshSize() per element.
type GradientDriver interface {
	GradientFill(dev *Device, verts []TriVertex, mesh []int, mode GradientMode) error
}

// PixelFormatDriver accepts or rejects the surface pixel format.
type PixelFormatDriver interface {
	SetPixelFormat(dev *Device, f gputypes.TextureFormat) error
}
