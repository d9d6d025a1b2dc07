package gdi

import "image"

// Flattening defaults.
const (
	// DefaultMaxDepth is the deepest subdivision level of one cubic.
	DefaultMaxDepth = 8
	// DefaultTolerance is the allowed deviation of a control point from the
	// chord, in device pixels.
	DefaultTolerance = 1
)

const (
	// bezierShift is the number of fractional bits used while subdividing.
	bezierShift = 4
	bezierHalf  = 1 << (bezierShift - 1)

	initialBufferSize = 150
)

// Flattener converts chains of cubic Bezier curves into polylines.
//
// The curves are subdivided at their parametric midpoint in fixed-point
// arithmetic until each piece is flat within Tolerance or MaxDepth levels
// have been used. The result is fully deterministic. The zero Flattener
// uses DefaultMaxDepth and DefaultTolerance.
type Flattener struct {
	MaxDepth  int
	Tolerance int
}

// FlattenBezier flattens pts with the default parameters.
func FlattenBezier(pts []image.Point) ([]image.Point, error) {
	return Flattener{}.Flatten(pts)
}

// Flatten flattens a chain of cubic Bezier curves. pts holds 3n+1 points:
// a start point followed by two control points and an end point for each
// curve, each curve starting where the previous one ended. Any other count
// fails with ErrInvalidPointCount.
//
// The first output point is pts[0] and the last is pts[len(pts)-1].
func (f Flattener) Flatten(pts []image.Point) ([]image.Point, error) {
	n := len(pts)
	if n == 1 || (n-1)%3 != 0 {
		return nil, ErrInvalidPointCount
	}
	depth := f.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	tol := f.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	s := subdivider{
		tol: tol << bezierShift,
		out: make([]image.Point, 0, initialBufferSize),
	}
	for i := 0; i+3 < n; i += 3 {
		var q quad
		for j := range q {
			q[j] = toFixed(pts[i+j])
		}
		s.subdivide(q, depth)
	}
	return s.out, nil
}

// fixed is a device coordinate scaled up by bezierShift bits.
type fixed struct {
	x, y int
}

func toFixed(p image.Point) fixed {
	return fixed{p.X << bezierShift, p.Y << bezierShift}
}

func (p fixed) point() image.Point {
	return image.Pt(shiftDown(p.x), shiftDown(p.y))
}

// shiftDown removes the fractional bits, rounding to nearest.
func shiftDown(v int) int {
	return (v + bezierHalf) >> bezierShift
}

func middle(a, b fixed) fixed {
	return fixed{(a.x + b.x + 1) / 2, (a.y + b.y + 1) / 2}
}

// quad is one cubic: start, two control points, end.
type quad [4]fixed

type subdivider struct {
	tol int
	out []image.Point
}

func (s *subdivider) subdivide(q quad, level int) {
	if level == 0 || s.flat(&q) {
		if len(s.out) == 0 {
			s.out = append(s.out, q[0].point())
		}
		s.out = append(s.out, q[3].point())
		return
	}

	var r quad
	r[3] = q[3]
	r[2] = middle(q[2], q[3])
	r[0] = middle(q[1], q[2])
	r[1] = middle(r[0], r[2])

	q[1] = middle(q[0], q[1])
	q[2] = middle(q[1], r[0])
	q[3] = middle(q[2], r[1])

	r[0] = q[3]

	s.subdivide(q, level-1)
	s.subdivide(r, level-1)
}

// flat reports whether both control points lie between the end points
// along the dominant axis and deviate from the chord by at most the
// tolerance along the other axis.
func (s *subdivider) flat(q *quad) bool {
	dx := q[3].x - q[0].x
	dy := q[3].y - q[0].y
	if abs(dy) <= abs(dx) {
		for _, c := range q[1:3] {
			if outside(c.x, q[0].x, q[3].x) {
				return false
			}
		}
		dx = shiftDown(dx)
		if dx == 0 {
			return true
		}
		slope := dy / dx
		for _, c := range q[1:3] {
			if abs(c.y-q[0].y-slope*shiftDown(c.x-q[0].x)) > s.tol {
				return false
			}
		}
		return true
	}

	for _, c := range q[1:3] {
		if outside(c.y, q[0].y, q[3].y) {
			return false
		}
	}
	dy = shiftDown(dy)
	if dy == 0 {
		return true
	}
	slope := dx / dy
	for _, c := range q[1:3] {
		if abs(c.x-q[0].x-slope*shiftDown(c.y-q[0].y)) > s.tol {
			return false
		}
	}
	return true
}

// outside reports whether a control coordinate c lies beyond the end
// coordinates v0 and v3 in the direction it departs from v0.
func outside(c, v0, v3 int) bool {
	if c < v0 {
		return c < v3
	}
	return c > v3
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
