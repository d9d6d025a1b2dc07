// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scan

import "image"

// Span is the half-open pixel run [X0, X1) on row Y.
type Span struct {
	Y, X0, X1 int
}

// Flood returns the spans of the 4-connected area containing seed whose
// pixels satisfy inside, limited to bounds. It returns nil when the seed
// is outside bounds or not inside. inside is evaluated on the unmodified
// surface; the caller paints the spans afterwards.
func Flood(bounds image.Rectangle, seed image.Point, inside func(x, y int) bool) []Span {
	if !seed.In(bounds) || !inside(seed.X, seed.Y) {
		return nil
	}
	w := bounds.Dx()
	seen := make([]bool, w*bounds.Dy())
	visited := func(x, y int) bool {
		return seen[(y-bounds.Min.Y)*w+x-bounds.Min.X]
	}
	ok := func(x, y int) bool {
		return !visited(x, y) && inside(x, y)
	}

	var spans []Span
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !ok(p.X, p.Y) {
			continue
		}
		x0, x1 := p.X, p.X+1
		for x0 > bounds.Min.X && ok(x0-1, p.Y) {
			x0--
		}
		for x1 < bounds.Max.X && ok(x1, p.Y) {
			x1++
		}
		row := (p.Y - bounds.Min.Y) * w
		for x := x0; x < x1; x++ {
			seen[row+x-bounds.Min.X] = true
		}
		spans = append(spans, Span{Y: p.Y, X0: x0, X1: x1})

		for _, y := range [2]int{p.Y - 1, p.Y + 1} {
			if y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			// Push one seed per run of candidate pixels.
			for x := x0; x < x1; x++ {
				if ok(x, y) && (x == x0 || !ok(x-1, y)) {
					stack = append(stack, image.Pt(x, y))
				}
			}
		}
	}
	return spans
}
