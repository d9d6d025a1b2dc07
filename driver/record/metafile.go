// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package record

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/region"
)

// Version is the metafile format version written by this package.
const Version = 1

var (
	// ErrVersion is returned by Load for metafiles of another version.
	ErrVersion = errors.New("record: unsupported metafile version")

	// ErrUnknownOp is returned by Play for a record it cannot replay.
	ErrUnknownOp = errors.New("record: unknown operation")
)

// Operation names used in records.
const (
	OpState          = "State"
	OpMoveTo         = "MoveTo"
	OpLineTo         = "LineTo"
	OpArc            = "Arc"
	OpArcTo          = "ArcTo"
	OpChord          = "Chord"
	OpPie            = "Pie"
	OpAngleArc       = "AngleArc"
	OpEllipse        = "Ellipse"
	OpRectangle      = "Rectangle"
	OpRoundRect      = "RoundRect"
	OpSetPixel       = "SetPixel"
	OpPaintRgn       = "PaintRgn"
	OpFillRgn        = "FillRgn"
	OpFrameRgn       = "FrameRgn"
	OpInvertRgn      = "InvertRgn"
	OpPolyPolygon    = "PolyPolygon"
	OpPolyPolyline   = "PolyPolyline"
	OpPolyline       = "Polyline"
	OpPolygon        = "Polygon"
	OpPolyBezier     = "PolyBezier"
	OpPolyBezierTo   = "PolyBezierTo"
	OpPolylineTo     = "PolylineTo"
	OpPolyDraw       = "PolyDraw"
	OpExtFloodFill   = "ExtFloodFill"
	OpGradientFill   = "GradientFill"
	OpSetPixelFormat = "SetPixelFormat"
)

// Metafile is a recorded sequence of drawing operations.
type Metafile struct {
	Version int      `yaml:"version"`
	Records []Record `yaml:"records"`
}

// Record is one drawing operation or a change of drawing state. Only the
// fields used by Op are set.
type Record struct {
	Op    string `yaml:"op"`
	State *State `yaml:"state,omitempty"`

	Point  image.Point     `yaml:"point,omitempty"`
	Rect   image.Rectangle `yaml:"rect,omitempty"`
	Start  image.Point     `yaml:"start,omitempty"`
	End    image.Point     `yaml:"end,omitempty"`
	Size   image.Point     `yaml:"size,omitempty"`
	Radius int             `yaml:"radius,omitempty"`

	StartAngle float64 `yaml:"start_angle,omitempty"`
	Sweep      float64 `yaml:"sweep,omitempty"`

	Points []image.Point     `yaml:"points,flow,omitempty"`
	Counts []int             `yaml:"counts,flow,omitempty"`
	Types  []gdi.PointType   `yaml:"types,flow,omitempty"`
	Region []image.Rectangle `yaml:"region,omitempty"`

	Color *Color `yaml:"color,omitempty"`
	Brush *Paint `yaml:"brush,omitempty"`
	Mode  int    `yaml:"mode,omitempty"`

	Vertices []Vertex               `yaml:"vertices,omitempty"`
	Mesh     []int                  `yaml:"mesh,flow,omitempty"`
	Format   gputypes.TextureFormat `yaml:"format,omitempty"`
}

// State is the DC drawing state that affects how operations render.
type State struct {
	Pen      Paint            `yaml:"pen"`
	Brush    Paint            `yaml:"brush"`
	ROP2     gdi.ROP2         `yaml:"rop2"`
	ArcDir   gdi.ArcDirection `yaml:"arc_direction"`
	FillMode region.FillMode  `yaml:"fill_mode"`
}

// Paint is a pen or brush: a color, or nothing at all.
type Paint struct {
	Null  bool  `yaml:"null,omitempty"`
	Color Color `yaml:"color"`
}

func penPaint(p gdi.Pen) Paint {
	return Paint{Null: p.Style == gdi.PenNull, Color: Color(p.Color)}
}

func brushPaint(b gdi.Brush) Paint {
	return Paint{Null: b.Style == gdi.BrushNull, Color: Color(b.Color)}
}

func (p Paint) pen() gdi.Pen {
	if p.Null {
		return gdi.NullPen
	}
	return gdi.SolidPen(color.RGBA(p.Color))
}

func (p Paint) brush() gdi.Brush {
	if p.Null {
		return gdi.NullBrush
	}
	return gdi.SolidBrush(color.RGBA(p.Color))
}

// Color is a color.RGBA written as "#rrggbbaa".
type Color color.RGBA

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return gdi.HexString(color.RGBA(c)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := gdi.ParseHex(s)
	if err != nil {
		return err
	}
	*c = Color(v)
	return nil
}

// Vertex is a gradient vertex with 16-bit channels.
type Vertex struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	R uint16 `yaml:"r"`
	G uint16 `yaml:"g"`
	B uint16 `yaml:"b"`
	A uint16 `yaml:"a"`
}

func vertices(vs []gdi.TriVertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = Vertex{X: v.X, Y: v.Y, R: v.Color.R, G: v.Color.G, B: v.Color.B, A: v.Color.A}
	}
	return out
}

func triVertices(vs []Vertex) []gdi.TriVertex {
	out := make([]gdi.TriVertex, len(vs))
	for i, v := range vs {
		out[i] = gdi.TriVertex{X: v.X, Y: v.Y, Color: color.RGBA64{R: v.R, G: v.G, B: v.B, A: v.A}}
	}
	return out
}

// Load reads a YAML metafile.
func Load(r io.Reader) (*Metafile, error) {
	var mf Metafile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("record: decode metafile: %w", err)
	}
	if mf.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, mf.Version)
	}
	return &mf, nil
}

// WriteTo writes the metafile as YAML.
func (mf *Metafile) WriteTo(w io.Writer) (int64, error) {
	b, err := yaml.Marshal(mf)
	if err != nil {
		return 0, fmt.Errorf("record: encode metafile: %w", err)
	}
	n, err := w.Write(b)
	return int64(n), err
}
