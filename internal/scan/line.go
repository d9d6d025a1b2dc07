// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scan provides the integer pixel walkers shared by the drivers:
// Bresenham lines, binary raster operations and flood fill spans.
package scan

// Line calls plot for every pixel of the line from (x0, y0) to (x1, y1),
// excluding the end pixel. A zero-length line plots nothing.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for x0 != x1 || y0 != y1 {
		plot(x0, y0)
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
