// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package region

import (
	"image"
	"math"
	"slices"
)

// FillMode selects which pixels of a self-intersecting polygon are inside.
type FillMode uint8

const (
	// Alternate fills pixels crossed an odd number of times by a ray from
	// the outside (even-odd rule).
	Alternate FillMode = iota + 1
	// Winding fills pixels with a non-zero winding number.
	Winding
)

// String returns the string representation of a FillMode.
func (m FillMode) String() string {
	switch m {
	case Alternate:
		return "Alternate"
	case Winding:
		return "Winding"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a defined fill mode.
func (m FillMode) Valid() bool {
	return m == Alternate || m == Winding
}

type polyEdge struct {
	x0, y0, x1, y1 float64
	dir            int
}

type crossing struct {
	x   float64
	dir int
}

// FromPolygons returns the region covered by a set of closed polygons.
// pts holds the vertices of all polygons back to back and counts the number
// of vertices in each. A pixel belongs to the region when its center lies
// inside according to mode. Polygons are closed implicitly; counts beyond
// len(pts) are clamped.
func FromPolygons(pts []image.Point, counts []int, mode FillMode) Region {
	var edges []polyEdge
	yMin, yMax := math.MaxInt, math.MinInt
	start := 0
	for _, n := range counts {
		if n <= 0 {
			continue
		}
		if start+n > len(pts) {
			n = len(pts) - start
		}
		poly := pts[start : start+n]
		start += n
		for i, p := range poly {
			q := poly[(i+1)%len(poly)]
			yMin = min(yMin, p.Y)
			yMax = max(yMax, p.Y)
			if p.Y == q.Y {
				continue
			}
			e := polyEdge{x0: float64(p.X), y0: float64(p.Y), x1: float64(q.X), y1: float64(q.Y), dir: 1}
			if p.Y > q.Y {
				e = polyEdge{x0: float64(q.X), y0: float64(q.Y), x1: float64(p.X), y1: float64(p.Y), dir: -1}
			}
			edges = append(edges, e)
		}
		if start >= len(pts) {
			break
		}
	}
	if len(edges) == 0 {
		return Region{}
	}

	var (
		out   []image.Rectangle
		open  []int // indices into out that end on the previous row
		xs    []crossing
		spans []image.Rectangle
	)
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if yc < e.y0 || yc >= e.y1 {
				continue
			}
			x := e.x0 + (yc-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
			xs = append(xs, crossing{x: x, dir: e.dir})
		}
		slices.SortFunc(xs, func(a, b crossing) int {
			switch {
			case a.x < b.x:
				return -1
			case a.x > b.x:
				return 1
			}
			return 0
		})

		spans = spans[:0]
		if mode == Winding {
			wind := 0
			var left float64
			for _, c := range xs {
				prev := wind
				wind += c.dir
				if prev == 0 && wind != 0 {
					left = c.x
				} else if prev != 0 && wind == 0 {
					spans = appendSpan(spans, left, c.x, y)
				}
			}
		} else {
			for i := 0; i+1 < len(xs); i += 2 {
				spans = appendSpan(spans, xs[i].x, xs[i+1].x, y)
			}
		}

		// Extend rectangles from the previous row whose horizontal extent
		// matches exactly; otherwise start new ones.
		var nextOpen []int
		for _, s := range spans {
			extended := false
			for _, idx := range open {
				r := &out[idx]
				if r.Min.X == s.Min.X && r.Max.X == s.Max.X && r.Max.Y == y {
					r.Max.Y++
					nextOpen = append(nextOpen, idx)
					extended = true
					break
				}
			}
			if !extended {
				out = append(out, s)
				nextOpen = append(nextOpen, len(out)-1)
			}
		}
		open = nextOpen
	}
	return normalized(out)
}

// appendSpan appends the pixels of row y whose centers lie in [xa, xb).
func appendSpan(spans []image.Rectangle, xa, xb float64, y int) []image.Rectangle {
	x0 := int(math.Ceil(xa - 0.5))
	x1 := int(math.Ceil(xb - 0.5))
	if x1 <= x0 {
		return spans
	}
	return append(spans, image.Rect(x0, y, x1, y+1))
}
