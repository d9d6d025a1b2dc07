// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package region implements device-space pixel regions as sets of disjoint
// rectangles.
//
// A Region is a value: every operation returns a new Region and never
// modifies its receiver, so regions can be shared freely. The zero Region is
// empty and ready to use.
//
//	frame := region.Rect(image.Rect(0, 0, 10, 10)).Frame(1, 1)
//	for _, r := range frame.Rects() {
//		// paint r
//	}
package region

import (
	"image"
	"slices"
)

// Region is a set of pixels described by disjoint, non-empty rectangles.
type Region struct {
	rects []image.Rectangle
}

// Rect returns the region covering r. An empty rectangle yields an empty
// region; r is canonicalized first, so reversed corners are accepted.
func Rect(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return Region{}
	}
	return Region{rects: []image.Rectangle{r}}
}

// New returns the union of the given rectangles.
func New(rects ...image.Rectangle) Region {
	var out Region
	for _, r := range rects {
		out = out.Union(Rect(r))
	}
	return out
}

// Rects returns the rectangles making up the region, sorted top to bottom
// and then left to right. The returned slice is a copy.
func (g Region) Rects() []image.Rectangle {
	return slices.Clone(g.rects)
}

// NumRects returns the number of rectangles in the region.
func (g Region) NumRects() int {
	return len(g.rects)
}

// IsEmpty reports whether the region contains no pixels.
func (g Region) IsEmpty() bool {
	return len(g.rects) == 0
}

// Bounds returns the smallest rectangle containing the region.
func (g Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, r := range g.rects {
		b = b.Union(r)
	}
	return b
}

// Area returns the number of pixels in the region.
func (g Region) Area() int {
	n := 0
	for _, r := range g.rects {
		n += r.Dx() * r.Dy()
	}
	return n
}

// Contains reports whether the pixel p is inside the region.
func (g Region) Contains(p image.Point) bool {
	for _, r := range g.rects {
		if p.In(r) {
			return true
		}
	}
	return false
}

// Offset returns the region translated by (dx, dy).
func (g Region) Offset(dx, dy int) Region {
	if len(g.rects) == 0 {
		return Region{}
	}
	d := image.Pt(dx, dy)
	out := make([]image.Rectangle, len(g.rects))
	for i, r := range g.rects {
		out[i] = r.Add(d)
	}
	return Region{rects: out}
}

// Intersect returns the pixels present in both regions.
func (g Region) Intersect(o Region) Region {
	var out []image.Rectangle
	for _, a := range g.rects {
		for _, b := range o.rects {
			if c := a.Intersect(b); !c.Empty() {
				out = append(out, c)
			}
		}
	}
	return normalized(out)
}

// Subtract returns the pixels of g that are not in o.
func (g Region) Subtract(o Region) Region {
	out := slices.Clone(g.rects)
	for _, b := range o.rects {
		var next []image.Rectangle
		for _, a := range out {
			next = appendDifference(next, a, b)
		}
		out = next
		if len(out) == 0 {
			break
		}
	}
	return normalized(out)
}

// Union returns the pixels present in either region.
func (g Region) Union(o Region) Region {
	if len(g.rects) == 0 {
		return Region{rects: slices.Clone(o.rects)}
	}
	extra := o.Subtract(g)
	out := make([]image.Rectangle, 0, len(g.rects)+len(extra.rects))
	out = append(out, g.rects...)
	out = append(out, extra.rects...)
	return normalized(out)
}

// Equal reports whether both regions cover exactly the same pixels.
func (g Region) Equal(o Region) bool {
	return g.Area() == o.Area() && g.Subtract(o).IsEmpty()
}

// Frame returns a frame of the region's outline, w pixels thick on the
// left and right edges and h pixels thick on the top and bottom edges: the
// region minus the part of it that stays inside when it is shifted by ±w
// horizontally and ±h vertically.
func (g Region) Frame(w, h int) Region {
	inner := g.Offset(-w, 0).
		Intersect(g.Offset(w, 0)).
		Intersect(g.Offset(0, -h)).
		Intersect(g.Offset(0, h))
	return g.Subtract(inner)
}

// appendDifference appends the parts of a not covered by b.
func appendDifference(dst []image.Rectangle, a, b image.Rectangle) []image.Rectangle {
	c := a.Intersect(b)
	if c.Empty() {
		return append(dst, a)
	}
	if a.Min.Y < c.Min.Y {
		dst = append(dst, image.Rect(a.Min.X, a.Min.Y, a.Max.X, c.Min.Y))
	}
	if a.Min.X < c.Min.X {
		dst = append(dst, image.Rect(a.Min.X, c.Min.Y, c.Min.X, c.Max.Y))
	}
	if c.Max.X < a.Max.X {
		dst = append(dst, image.Rect(c.Max.X, c.Min.Y, a.Max.X, c.Max.Y))
	}
	if c.Max.Y < a.Max.Y {
		dst = append(dst, image.Rect(a.Min.X, c.Max.Y, a.Max.X, a.Max.Y))
	}
	return dst
}

// normalized sorts rects into band order. The input must already be
// disjoint.
func normalized(rects []image.Rectangle) Region {
	if len(rects) == 0 {
		return Region{}
	}
	slices.SortFunc(rects, func(a, b image.Rectangle) int {
		if a.Min.Y != b.Min.Y {
			return a.Min.Y - b.Min.Y
		}
		return a.Min.X - b.Min.X
	})
	return Region{rects: rects}
}
