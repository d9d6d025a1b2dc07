package gdi

import (
	"image"

	"github.com/gogpu/gdi/region"
)

// PolyOp selects the operation performed by PolyPolyDraw.
type PolyOp uint8

const (
	// OpPolyPolygon fills and outlines one or more polygons.
	OpPolyPolygon PolyOp = iota + 1
	// OpPolyPolyline strokes one or more polylines.
	OpPolyPolyline
	// OpPolyBezier strokes one chain of 3n+1 Bezier points.
	OpPolyBezier
	// OpPolyBezierTo strokes 3n Bezier points starting at the current
	// position.
	OpPolyBezierTo
	// OpPolylineTo strokes a polyline starting at the current position.
	OpPolylineTo
	// OpPolyPolygonRgn builds a region from one or more polygons using the
	// DC's polygon fill mode. Nothing is drawn.
	OpPolyPolygonRgn
)

// String returns the string representation of a PolyOp.
func (op PolyOp) String() string {
	switch op {
	case OpPolyPolygon:
		return "PolyPolygon"
	case OpPolyPolyline:
		return "PolyPolyline"
	case OpPolyBezier:
		return "PolyBezier"
	case OpPolyBezierTo:
		return "PolyBezierTo"
	case OpPolylineTo:
		return "PolylineTo"
	case OpPolyPolygonRgn:
		return "PolyPolygonRgn"
	default:
		return "Unknown"
	}
}

// PolyPolyDraw is the common entry point of the multi-point operations.
// pts holds the points of all figures back to back and counts the number of
// points of each figure. The shape of counts is checked against op before
// any driver is called:
//
//   - OpPolyPolygon, OpPolyPolyline: one or more figures of at least two
//     points each.
//   - OpPolyBezier: one figure of 3n+1 points, n >= 1.
//   - OpPolyBezierTo: one figure of 3n points, n >= 1.
//   - OpPolylineTo: one figure.
//   - OpPolyPolygonRgn: one or more polygons of at least one point each.
//
// The counts may not add up to more than len(pts). A shape violation fails
// with ErrInvalidPointCount and an unknown op with ErrInvalidPolyOp. The
// *To operations and OpPolyBezier move the current position to the last
// input point on success. The returned region is only set for
// OpPolyPolygonRgn.
func (dc *DC) PolyPolyDraw(op PolyOp, pts []image.Point, counts []int) (region.Region, error) {
	total := 0
	for _, n := range counts {
		if n < 0 {
			return region.Region{}, ErrInvalidPointCount
		}
		total += n
	}
	if total > len(pts) {
		return region.Region{}, ErrInvalidPointCount
	}

	switch op {
	case OpPolyPolygon, OpPolyPolyline:
		if !figuresAtLeast(counts, 2) {
			return region.Region{}, ErrInvalidPointCount
		}
		if op == OpPolyPolygon {
			return region.Region{}, dc.top.PolyPolygon(pts[:total], counts)
		}
		return region.Region{}, dc.top.PolyPolyline(pts[:total], counts)

	case OpPolyPolygonRgn:
		if !figuresAtLeast(counts, 1) {
			return region.Region{}, ErrInvalidPointCount
		}
		return region.FromPolygons(pts[:total], counts, dc.fillMode), nil

	case OpPolyBezier:
		if len(counts) != 1 || counts[0] == 1 || counts[0]%3 != 1 {
			return region.Region{}, ErrInvalidPointCount
		}
		if err := dc.top.PolyBezier(pts[:total]); err != nil {
			return region.Region{}, err
		}
		dc.pos = pts[total-1]
		return region.Region{}, nil

	case OpPolyBezierTo:
		if len(counts) != 1 || counts[0] == 0 || counts[0]%3 != 0 {
			return region.Region{}, ErrInvalidPointCount
		}
		if err := dc.top.PolyBezierTo(pts[:total]); err != nil {
			return region.Region{}, err
		}
		dc.pos = pts[total-1]
		return region.Region{}, nil

	case OpPolylineTo:
		if len(counts) != 1 {
			return region.Region{}, ErrInvalidPointCount
		}
		if err := dc.top.PolylineTo(pts[:total]); err != nil {
			return region.Region{}, err
		}
		if total > 0 {
			dc.pos = pts[total-1]
		}
		return region.Region{}, nil
	}
	return region.Region{}, ErrInvalidPolyOp
}

// figuresAtLeast reports whether counts describes at least one figure and
// every figure has at least n points.
func figuresAtLeast(counts []int, n int) bool {
	if len(counts) == 0 {
		return false
	}
	for _, c := range counts {
		if c < n {
			return false
		}
	}
	return true
}

// Polyline strokes the polyline through pts.
func (dc *DC) Polyline(pts []image.Point) error {
	_, err := dc.PolyPolyDraw(OpPolyPolyline, pts, []int{len(pts)})
	return err
}

// Polygon outlines the closed polygon through pts and fills it with the
// brush.
func (dc *DC) Polygon(pts []image.Point) error {
	_, err := dc.PolyPolyDraw(OpPolyPolygon, pts, []int{len(pts)})
	return err
}

// PolyPolyline strokes several polylines.
func (dc *DC) PolyPolyline(pts []image.Point, counts []int) error {
	_, err := dc.PolyPolyDraw(OpPolyPolyline, pts, counts)
	return err
}

// PolyPolygon fills and outlines several polygons using the polygon fill
// mode.
func (dc *DC) PolyPolygon(pts []image.Point, counts []int) error {
	_, err := dc.PolyPolyDraw(OpPolyPolygon, pts, counts)
	return err
}

// PolyBezier strokes a chain of cubic Bezier curves given by 3n+1 points.
func (dc *DC) PolyBezier(pts []image.Point) error {
	_, err := dc.PolyPolyDraw(OpPolyBezier, pts, []int{len(pts)})
	return err
}

// PolyBezierTo strokes a chain of cubic Bezier curves starting at the
// current position; pts holds 3n points.
func (dc *DC) PolyBezierTo(pts []image.Point) error {
	_, err := dc.PolyPolyDraw(OpPolyBezierTo, pts, []int{len(pts)})
	return err
}

// PolylineTo strokes a polyline from the current position through pts.
func (dc *DC) PolylineTo(pts []image.Point) error {
	_, err := dc.PolyPolyDraw(OpPolylineTo, pts, []int{len(pts)})
	return err
}

// PolyPolygonRgn returns the region covered by the given polygons under
// the DC's polygon fill mode.
func (dc *DC) PolyPolygonRgn(pts []image.Point, counts []int) (region.Region, error) {
	return dc.PolyPolyDraw(OpPolyPolygonRgn, pts, counts)
}
