package gdi

import (
	"image"
	"slices"
)

// Path accumulates a sequence of tagged points for PolyDraw.
//
// A path that does not start with MoveTo continues from wherever it is
// drawn: DrawPath uses the DC's current position as the anchor.
type Path struct {
	pts   []image.Point
	types []PointType
	start image.Point // first point of the current figure
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		pts:   make([]image.Point, 0, 16),
		types: make([]PointType, 0, 16),
	}
}

// MoveTo starts a new figure at (x, y).
func (p *Path) MoveTo(x, y int) {
	pt := image.Pt(x, y)
	p.add(pt, PTMoveTo)
	p.start = pt
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y int) {
	p.add(image.Pt(x, y), PTLineTo)
}

// CubicTo adds a cubic Bezier curve with control points c1 and c2 ending
// at end.
func (p *Path) CubicTo(c1, c2, end image.Point) {
	p.add(c1, PTBezierTo)
	p.add(c2, PTBezierTo)
	p.add(end, PTBezierTo)
}

// ArcTo adds the arc of the ellipse inscribed in r from the ray through
// start to the ray through end, joined to the figure with a line. On an
// empty path the arc starts a figure. A degenerate r adds nothing.
func (p *Path) ArcTo(r image.Rectangle, start, end image.Point, dir ArcDirection) {
	curve := ArcBeziers(r, start, end, dir)
	if len(curve) == 0 {
		return
	}
	if len(p.pts) == 0 {
		p.MoveTo(curve[0].X, curve[0].Y)
	} else {
		p.LineTo(curve[0].X, curve[0].Y)
	}
	for i := 1; i+2 < len(curve); i += 3 {
		p.CubicTo(curve[i], curve[i+1], curve[i+2])
	}
}

// Close closes the current figure with a line back to its first point.
// It has no effect on an empty path or right after MoveTo.
func (p *Path) Close() {
	n := len(p.types)
	if n == 0 || p.types[n-1] == PTMoveTo {
		return
	}
	p.types[n-1] |= PTCloseFigure
}

// Clear removes all points from the path.
func (p *Path) Clear() {
	p.pts = p.pts[:0]
	p.types = p.types[:0]
	p.start = image.Point{}
}

// Len returns the number of tagged points.
func (p *Path) Len() int {
	return len(p.pts)
}

// Points returns a copy of the path's points.
func (p *Path) Points() []image.Point {
	return slices.Clone(p.pts)
}

// Types returns a copy of the path's point types.
func (p *Path) Types() []PointType {
	return slices.Clone(p.types)
}

// CurrentPoint returns the last point added, and the figure start after
// Close.
func (p *Path) CurrentPoint() image.Point {
	n := len(p.pts)
	if n == 0 {
		return image.Point{}
	}
	if p.types[n-1]&PTCloseFigure != 0 {
		return p.start
	}
	return p.pts[n-1]
}

// Validate checks the point types with ValidatePointTypes.
func (p *Path) Validate() error {
	return ValidatePointTypes(p.types)
}

// Flatten returns a copy of the path with every Bezier curve replaced by
// line segments. from is the point the path continues from when it does
// not start with MoveTo.
func (p *Path) Flatten(f Flattener, from image.Point) (*Path, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := NewPath()
	cur, figure := from, from
	for i := 0; i < len(p.pts); i++ {
		t := p.types[i]
		switch t &^ PTCloseFigure {
		case PTMoveTo:
			out.MoveTo(p.pts[i].X, p.pts[i].Y)
			figure = p.pts[i]
			cur = figure
		case PTLineTo:
			out.LineTo(p.pts[i].X, p.pts[i].Y)
			cur = p.pts[i]
		case PTBezierTo:
			line, err := f.Flatten([]image.Point{cur, p.pts[i], p.pts[i+1], p.pts[i+2]})
			if err != nil {
				return nil, err
			}
			for _, q := range line[1:] {
				out.LineTo(q.X, q.Y)
			}
			i += 2
			t = p.types[i]
			cur = p.pts[i]
		}
		if t&PTCloseFigure != 0 {
			out.Close()
			cur = figure
		}
	}
	return out, nil
}

func (p *Path) add(pt image.Point, t PointType) {
	p.pts = append(p.pts, pt)
	p.types = append(p.types, t)
}
