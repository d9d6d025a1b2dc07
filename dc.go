package gdi

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gdi/region"
)

// DC is a device context: the drawing state (current position, arc
// direction, selected pen and brush, raster operation, polygon fill mode,
// pixel format) plus the driver chain that performs the drawing.
//
// Every drawing method validates its arguments, dispatches to the top of
// the driver chain and, on success, updates the current position where the
// operation defines an end point. A failed call leaves the DC unchanged.
//
// A DC is not safe for concurrent use. Different DCs may be used from
// different goroutines.
type DC struct {
	top *Device

	pos       image.Point
	arcDir    ArcDirection
	format    gputypes.TextureFormat
	formatSet bool
	brush     Brush
	pen       Pen
	rop       ROP2
	fillMode  region.FillMode
	flat      Flattener
}

// NewDC creates a device context. Drivers given with WithDrivers are
// installed top first above the fallback layer, which implements every
// operation; without drivers the DC is a null device.
func NewDC(opts ...DCOption) (*DC, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc := &DC{
		arcDir:   o.arcDir,
		brush:    WhiteBrush,
		pen:      BlackPen,
		rop:      ROP2CopyPen,
		fillMode: region.Alternate,
		flat:     o.flattener,
	}
	if dc.arcDir != Clockwise {
		dc.arcDir = CounterClockwise
	}

	dev := &Device{dc: dc, drv: fallback{}}
	for i := len(o.drivers) - 1; i >= 0; i-- {
		if o.drivers[i] == nil {
			continue
		}
		dev = &Device{dc: dc, drv: o.drivers[i], next: dev}
	}
	dc.top = dev

	log := Logger()
	propagateLogger(dc.top, log)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("gdi: driver chain", "chain", dc.Chain())
	}

	if o.hasFormat {
		if err := dc.SetPixelFormat(o.format); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

// Device returns the top of the driver chain.
func (dc *DC) Device() *Device {
	return dc.top
}

// Chain returns the driver names from top to bottom.
func (dc *DC) Chain() []string {
	var names []string
	for d := dc.top; d != nil; d = d.next {
		names = append(names, d.drv.Name())
	}
	return names
}

// CurrentPosition returns the point where LineTo and the *To operations
// start.
func (dc *DC) CurrentPosition() image.Point {
	return dc.pos
}

// ArcDirection returns the current arc direction.
func (dc *DC) ArcDirection() ArcDirection {
	return dc.arcDir
}

// SetArcDirection sets the arc direction and returns the previous one.
func (dc *DC) SetArcDirection(dir ArcDirection) (ArcDirection, error) {
	if dir != Clockwise && dir != CounterClockwise {
		return 0, ErrInvalidArgument
	}
	prev := dc.arcDir
	dc.arcDir = dir
	return prev, nil
}

// Brush returns the selected brush.
func (dc *DC) Brush() Brush {
	return dc.brush
}

// SelectBrush selects b and returns the previously selected brush.
func (dc *DC) SelectBrush(b Brush) Brush {
	prev := dc.brush
	dc.brush = b
	return prev
}

// Pen returns the selected pen.
func (dc *DC) Pen() Pen {
	return dc.pen
}

// SelectPen selects p and returns the previously selected pen.
func (dc *DC) SelectPen(p Pen) Pen {
	prev := dc.pen
	dc.pen = p
	return prev
}

// ROP2 returns the raster operation applied to pen and brush output.
func (dc *DC) ROP2() ROP2 {
	return dc.rop
}

// SetROP2 sets the raster operation and returns the previous one.
func (dc *DC) SetROP2(r ROP2) (ROP2, error) {
	if !r.Valid() {
		return 0, ErrInvalidArgument
	}
	prev := dc.rop
	dc.rop = r
	return prev, nil
}

// PolyFillMode returns the fill rule used for polygons.
func (dc *DC) PolyFillMode() region.FillMode {
	return dc.fillMode
}

// SetPolyFillMode sets the polygon fill rule and returns the previous one.
func (dc *DC) SetPolyFillMode(m region.FillMode) (region.FillMode, error) {
	if !m.Valid() {
		return 0, ErrInvalidArgument
	}
	prev := dc.fillMode
	dc.fillMode = m
	return prev, nil
}

// Flattener returns the Bezier flattening parameters of the DC.
func (dc *DC) Flattener() Flattener {
	return dc.flat
}

// PixelFormat returns the pixel format and whether one has been set.
func (dc *DC) PixelFormat() (gputypes.TextureFormat, bool) {
	return dc.format, dc.formatSet
}

// SetPixelFormat sets the pixel format of the surface. The format can be
// chosen once; setting the same format again succeeds, a different one
// fails with ErrPixelFormatSet.
func (dc *DC) SetPixelFormat(f gputypes.TextureFormat) error {
	if dc.formatSet {
		if f == dc.format {
			return nil
		}
		return ErrPixelFormatSet
	}
	if err := dc.top.SetPixelFormat(f); err != nil {
		return err
	}
	dc.format = f
	dc.formatSet = true
	return nil
}

// MoveTo sets the current position and returns the previous one.
func (dc *DC) MoveTo(x, y int) (image.Point, error) {
	if err := dc.top.MoveTo(x, y); err != nil {
		return dc.pos, err
	}
	prev := dc.pos
	dc.pos = image.Pt(x, y)
	return prev, nil
}

// LineTo draws a line from the current position up to, but not including,
// (x, y) and moves the current position there.
func (dc *DC) LineTo(x, y int) error {
	if err := dc.top.LineTo(x, y); err != nil {
		return err
	}
	dc.pos = image.Pt(x, y)
	return nil
}

// Arc draws an elliptical arc inscribed in r from the ray through start to
// the ray through end, in the current arc direction.
func (dc *DC) Arc(r image.Rectangle, start, end image.Point) error {
	if degenerate(r) {
		return ErrDegenerateRect
	}
	return dc.top.Arc(r, start, end)
}

// ArcTo is Arc preceded by a line from the current position to the start
// of the arc. The current position moves to the end of the arc.
func (dc *DC) ArcTo(r image.Rectangle, start, end image.Point) error {
	if degenerate(r) {
		return ErrDegenerateRect
	}
	if err := dc.top.ArcTo(r, start, end); err != nil {
		return err
	}
	dc.pos = PointOnEllipse(r, EllipseAngle(r, end))
	return nil
}

// Chord draws an arc closed by the line between its end points and fills
// it with the brush.
func (dc *DC) Chord(r image.Rectangle, start, end image.Point) error {
	if degenerate(r) {
		return ErrDegenerateRect
	}
	return dc.top.Chord(r, start, end)
}

// Pie draws an arc closed by two radii and fills it with the brush.
func (dc *DC) Pie(r image.Rectangle, start, end image.Point) error {
	if degenerate(r) {
		return ErrDegenerateRect
	}
	return dc.top.Pie(r, start, end)
}

// AngleArc draws a line from the current position to the start of a
// circular arc, then the arc. Angles are in degrees counter-clockwise from
// the x axis; a negative sweep draws clockwise. The current position moves
// to the end of the arc.
func (dc *DC) AngleArc(center image.Point, radius int, start, sweep float64) error {
	if radius < 0 {
		return ErrInvalidArgument
	}
	if err := dc.top.AngleArc(center, radius, start, sweep); err != nil {
		return err
	}
	dc.pos = AngleArcPoint(center, radius, start+sweep)
	return nil
}

// Ellipse draws the ellipse inscribed in r.
func (dc *DC) Ellipse(r image.Rectangle) error {
	return dc.top.Ellipse(r)
}

// Rectangle draws r outlined with the pen and filled with the brush.
func (dc *DC) Rectangle(r image.Rectangle) error {
	return dc.top.Rectangle(r)
}

// RoundRect draws r with corners rounded by an ellipse of the given size.
func (dc *DC) RoundRect(r image.Rectangle, ellipseW, ellipseH int) error {
	return dc.top.RoundRect(r, ellipseW, ellipseH)
}

// SetPixel sets the pixel at (x, y) and returns the color actually stored.
func (dc *DC) SetPixel(x, y int, c color.RGBA) (color.RGBA, error) {
	return dc.top.SetPixel(x, y, c)
}

// GetPixel returns the color of the pixel at (x, y).
func (dc *DC) GetPixel(x, y int) (color.RGBA, error) {
	return dc.top.GetPixel(x, y)
}

// PaintRgn paints rgn with the selected brush.
func (dc *DC) PaintRgn(rgn region.Region) error {
	return dc.top.PaintRgn(rgn)
}

// FillRgn paints rgn with b. The selected brush is unchanged afterwards.
func (dc *DC) FillRgn(rgn region.Region, b Brush) error {
	return dc.top.FillRgn(rgn, b)
}

// FrameRgn paints a frame around rgn with b, w pixels wide on vertical
// edges and h pixels high on horizontal ones.
func (dc *DC) FrameRgn(rgn region.Region, b Brush, w, h int) error {
	if w < 0 || h < 0 {
		return ErrInvalidArgument
	}
	return dc.top.FrameRgn(rgn, b, w, h)
}

// InvertRgn inverts the colors of rgn.
func (dc *DC) InvertRgn(rgn region.Region) error {
	return dc.top.InvertRgn(rgn)
}

// PolyDraw strokes a sequence of tagged points. The point types are
// checked before anything is drawn; a malformed sequence fails with
// ErrInvalidPointTypes. On success the current position moves to the last
// point. If a driver fails after earlier figures were drawn, the returned
// *StrokeError reports the last point drawn and the current position
// moves there.
func (dc *DC) PolyDraw(pts []image.Point, types []PointType) error {
	if len(pts) != len(types) {
		return ErrInvalidPointCount
	}
	if err := ValidatePointTypes(types); err != nil {
		return err
	}
	if err := dc.top.PolyDraw(pts, types); err != nil {
		var se *StrokeError
		if errors.As(err, &se) && se.Drawn {
			dc.pos = se.Last
		}
		return err
	}
	if len(pts) > 0 {
		dc.pos = pts[len(pts)-1]
	}
	return nil
}

// DrawPath strokes p with PolyDraw.
func (dc *DC) DrawPath(p *Path) error {
	return dc.PolyDraw(p.pts, p.types)
}

// FloodFill fills the area around (x, y) bounded by pixels of color c.
func (dc *DC) FloodFill(x, y int, c color.RGBA) error {
	return dc.ExtFloodFill(x, y, c, FloodFillBorder)
}

// ExtFloodFill fills the area connected to (x, y) with the selected brush.
// In FloodFillBorder mode the area is bounded by pixels of color c; in
// FloodFillSurface mode it consists of the pixels of color c.
func (dc *DC) ExtFloodFill(x, y int, c color.RGBA, mode FloodFillMode) error {
	if mode != FloodFillBorder && mode != FloodFillSurface {
		return ErrInvalidArgument
	}
	return dc.top.ExtFloodFill(x, y, c, mode)
}

// GradientFill fills rectangles or triangles whose vertices are given by
// indices into verts.
func (dc *DC) GradientFill(verts []TriVertex, mesh []int, mode GradientMode) error {
	if mode > GradientTriangle {
		return ErrInvalidArgument
	}
	if len(mesh)%mode.MeshSize() != 0 {
		return ErrInvalidPointCount
	}
	for _, i := range mesh {
		if i < 0 || i >= len(verts) {
			return ErrInvalidArgument
		}
	}
	return dc.top.GradientFill(verts, mesh, mode)
}

func degenerate(r image.Rectangle) bool {
	return r.Dx() == 0 || r.Dy() == 0
}
