package gdi

import (
	"image/color"
)

// ArcDirection selects the direction in which arcs, chords, pies and
// rectangles are drawn. Directions are as seen on screen (y grows down).
type ArcDirection uint8

const (
	// CounterClockwise is the default arc direction.
	CounterClockwise ArcDirection = iota + 1
	// Clockwise draws arcs in the clockwise direction.
	Clockwise
)

// String returns the string representation of an ArcDirection.
func (d ArcDirection) String() string {
	switch d {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "Unknown"
	}
}

// PointType tags one point of a PolyDraw sequence.
// PTCloseFigure may be combined with PTLineTo or with the last point of a
// PTBezierTo run.
type PointType uint8

const (
	PTCloseFigure PointType = 0x01
	PTLineTo      PointType = 0x02
	PTBezierTo    PointType = 0x04
	PTMoveTo      PointType = 0x06
)

// String returns the string representation of a PointType.
func (t PointType) String() string {
	var s string
	switch t &^ PTCloseFigure {
	case PTMoveTo:
		s = "MoveTo"
	case PTLineTo:
		s = "LineTo"
	case PTBezierTo:
		s = "BezierTo"
	default:
		return "Unknown"
	}
	if t&PTCloseFigure != 0 {
		s += "|CloseFigure"
	}
	return s
}

// ROP2 is a binary raster operation combining the pen or brush color with
// the destination pixel. Values match the classic R2_* codes (1..16); the
// value minus one is the truth table indexed by (pen bit << 1 | dst bit).
type ROP2 uint8

const (
	ROP2Black       ROP2 = iota + 1 // 0
	ROP2NotMergePen                 // ~(P | D)
	ROP2MaskNotPen                  // ~P & D
	ROP2NotCopyPen                  // ~P
	ROP2MaskPenNot                  // P & ~D
	ROP2Not                         // ~D
	ROP2XorPen                      // P ^ D
	ROP2NotMaskPen                  // ~(P & D)
	ROP2MaskPen                     // P & D
	ROP2NotXorPen                   // ~(P ^ D)
	ROP2Nop                         // D
	ROP2MergeNotPen                 // ~P | D
	ROP2CopyPen                     // P
	ROP2MergePenNot                 // P | ~D
	ROP2MergePen                    // P | D
	ROP2White                       // 1
)

// Valid reports whether r is one of the sixteen defined raster operations.
func (r ROP2) Valid() bool {
	return r >= ROP2Black && r <= ROP2White
}

// BrushStyle selects how a brush paints.
type BrushStyle uint8

const (
	BrushSolid BrushStyle = iota
	BrushNull
)

// Brush describes how interiors are filled.
type Brush struct {
	Style BrushStyle
	Color color.RGBA
}

// SolidBrush returns a solid brush of the given color.
func SolidBrush(c color.RGBA) Brush {
	return Brush{Style: BrushSolid, Color: c}
}

// Stock brushes.
var (
	BlackBrush = SolidBrush(Black)
	WhiteBrush = SolidBrush(White)
	NullBrush  = Brush{Style: BrushNull}
)

// PenStyle selects how a pen strokes.
type PenStyle uint8

const (
	PenSolid PenStyle = iota
	PenNull
)

// Pen describes how outlines are stroked. Pens are always one device
// pixel wide.
type Pen struct {
	Style PenStyle
	Color color.RGBA
}

// SolidPen returns a solid pen of the given color.
func SolidPen(c color.RGBA) Pen {
	return Pen{Style: PenSolid, Color: c}
}

// Stock pens.
var (
	BlackPen = SolidPen(Black)
	WhitePen = SolidPen(White)
	NullPen  = Pen{Style: PenNull}
)

// FloodFillMode selects the interior test used by ExtFloodFill.
type FloodFillMode uint8

const (
	// FloodFillBorder fills outward until pixels of the given color.
	FloodFillBorder FloodFillMode = iota
	// FloodFillSurface fills every connected pixel of the given color.
	FloodFillSurface
)

// GradientMode selects the mesh interpretation of GradientFill.
type GradientMode uint8

const (
	// GradientRectH interpolates colors horizontally across rectangles
	// given as vertex index pairs (upper-left, lower-right).
	GradientRectH GradientMode = iota
	// GradientRectV interpolates colors vertically across rectangles.
	GradientRectV
	// GradientTriangle interpolates across triangles given as index triples.
	GradientTriangle
)

// MeshSize returns the number of vertex indices per mesh element.
func (m GradientMode) MeshSize() int {
	if m == GradientTriangle {
		return 3
	}
	return 2
}

// TriVertex is one gradient vertex with a 16-bit-per-channel color.
type TriVertex struct {
	X, Y  int
	Color color.RGBA64
}
