package gdi

import (
	"image"
	"math"
)

// Round rounds x to the nearest integer, halves rounding up.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// EllipseCenter returns the center of the ellipse inscribed in r.
// The corners of r may be given in any order.
func EllipseCenter(r image.Rectangle) (cx, cy float64) {
	rx, ry := EllipseRadii(r)
	cx = float64(min(r.Min.X, r.Max.X)) + rx
	cy = float64(min(r.Min.Y, r.Max.Y)) + ry
	return cx, cy
}

// EllipseRadii returns the horizontal and vertical radii of the ellipse
// inscribed in r.
func EllipseRadii(r image.Rectangle) (rx, ry float64) {
	return math.Abs(float64(r.Max.X-r.Min.X)) / 2, math.Abs(float64(r.Max.Y-r.Min.Y)) / 2
}

// EllipseAngle returns the angle, in radians, of the ray from the center
// of the ellipse inscribed in r through p. Coordinates are normalized by
// the width and height of r first, so the angle is the parameter of the
// point where the ray meets the ellipse. Angles grow clockwise on screen.
func EllipseAngle(r image.Rectangle, p image.Point) float64 {
	cx, cy := EllipseCenter(r)
	w := math.Abs(float64(r.Max.X - r.Min.X))
	h := math.Abs(float64(r.Max.Y - r.Min.Y))
	return math.Atan2((float64(p.Y)-cy)/h, (float64(p.X)-cx)/w)
}

// PointOnEllipse returns the point of the ellipse inscribed in r at the
// parameter angle, in radians, rounded to device pixels.
func PointOnEllipse(r image.Rectangle, angle float64) image.Point {
	cx, cy := EllipseCenter(r)
	rx, ry := EllipseRadii(r)
	return image.Pt(Round(cx+math.Cos(angle)*rx), Round(cy+math.Sin(angle)*ry))
}

// AngleArcPoint returns the point on the circle of the given center and
// radius at deg degrees, measured counter-clockwise from the positive x
// axis as seen on screen.
func AngleArcPoint(center image.Point, radius int, deg float64) image.Point {
	rad := deg * math.Pi / 180
	r := float64(radius)
	return image.Pt(
		Round(float64(center.X)+math.Cos(rad)*r),
		Round(float64(center.Y)-math.Sin(rad)*r),
	)
}

// ArcBeziers approximates the arc of the ellipse inscribed in r, from the
// ray through start to the ray through end in direction dir, with one cubic
// Bezier per quadrant crossed. The result holds 3n+1 points and can be
// passed to Flatten. Equal start and end angles give the full ellipse. The
// ellipse touches the left and top edges of r and stays inside its right
// and bottom edges. A degenerate r yields nil.
func ArcBeziers(r image.Rectangle, start, end image.Point, dir ArcDirection) []image.Point {
	if degenerate(r) {
		return nil
	}
	r = r.Canon()

	a0 := EllipseAngle(r, start)
	a1 := EllipseAngle(r, end)
	cw := dir == Clockwise
	if cw {
		if a1 <= a0 {
			a1 += 2 * math.Pi
		}
	} else if a1 >= a0 {
		a1 -= 2 * math.Pi
	}

	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()-1), float64(r.Dy()-1)
	scale := func(nx, ny float64) image.Point {
		return image.Pt(Round(x0+w*0.5*(nx+1)), Round(y0+h*0.5*(ny+1)))
	}

	out := []image.Point{scale(math.Cos(a0), math.Sin(a0))}
	var qs, qe float64
	for first, last := true, false; !last; first = false {
		if first {
			qs = a0
			if cw {
				qe = (math.Floor(a0/(math.Pi/2)) + 1) * math.Pi / 2
			} else {
				qe = (math.Ceil(a0/(math.Pi/2)) - 1) * math.Pi / 2
			}
		} else {
			qs = qe
			if cw {
				qe += math.Pi / 2
			} else {
				qe -= math.Pi / 2
			}
		}
		if (cw && a1 < qe) || (!cw && a1 > qe) {
			qe = a1
			last = true
		}
		c1, c2, c3 := arcPart(qs, qe)
		out = append(out, scale(c1[0], c1[1]), scale(c2[0], c2[1]), scale(c3[0], c3[1]))
	}
	return out
}

// arcPart returns the control points and end point of the cubic
// approximating the unit circle between angles s and e, at most a quarter
// turn apart.
func arcPart(s, e float64) (c1, c2, c3 [2]float64) {
	half := (e - s) / 2
	if math.Abs(half) <= 1e-8 {
		p := [2]float64{math.Cos(s), math.Sin(s)}
		return p, p, p
	}
	a := 4.0 / 3.0 * (1 - math.Cos(half)) / math.Sin(half)
	xs, ys := math.Cos(s), math.Sin(s)
	xe, ye := math.Cos(e), math.Sin(e)
	c1 = [2]float64{xs - a*ys, ys + a*xs}
	c2 = [2]float64{xe + a*ye, ye - a*xe}
	c3 = [2]float64{xe, ye}
	return c1, c2, c3
}
