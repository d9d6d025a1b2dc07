// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package record

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gdi"
	"github.com/gogpu/gdi/driver/raster"
	"github.com/gogpu/gdi/region"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func newRecordingDC(t *testing.T, w, h int) (*gdi.DC, *Driver, *raster.Pixmap) {
	t.Helper()
	pm := raster.NewPixmap(w, h)
	pm.Clear(gdi.White)
	rec := New()
	dc, err := gdi.NewDC(gdi.WithDrivers(rec, raster.New(pm)))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	return dc, rec, pm
}

func ops(mf *Metafile) []string {
	out := make([]string, len(mf.Records))
	for i, r := range mf.Records {
		out[i] = r.Op
	}
	return out
}

func TestRecordsTopLevelCallsOnce(t *testing.T) {
	dc, rec, _ := newRecordingDC(t, 40, 40)
	pts := []image.Point{{0, 0}, {10, 30}, {30, 30}, {39, 0}}
	if err := dc.PolyBezier(pts); err != nil {
		t.Fatalf("PolyBezier() error = %v", err)
	}
	mf := rec.Metafile()
	if got, want := ops(mf), []string{OpState, OpPolyBezier}; !slices.Equal(got, want) {
		t.Fatalf("recorded %v, want %v", got, want)
	}
	if !slices.Equal(mf.Records[1].Points, pts) {
		t.Errorf("recorded points %v, want %v", mf.Records[1].Points, pts)
	}
}

func TestRecordsStateChanges(t *testing.T) {
	dc, rec, _ := newRecordingDC(t, 20, 20)
	if _, err := dc.MoveTo(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := dc.LineTo(5, 1); err != nil {
		t.Fatal(err)
	}
	dc.SelectPen(gdi.SolidPen(red))
	if err := dc.LineTo(5, 5); err != nil {
		t.Fatal(err)
	}
	mf := rec.Metafile()
	want := []string{OpState, OpMoveTo, OpLineTo, OpState, OpLineTo}
	if got := ops(mf); !slices.Equal(got, want) {
		t.Fatalf("recorded %v, want %v", got, want)
	}
	if got := color.RGBA(mf.Records[3].State.Pen.Color); got != red {
		t.Errorf("second state pen = %v, want %v", got, red)
	}
}

func TestFailedCallsNotRecorded(t *testing.T) {
	dc, rec, _ := newRecordingDC(t, 4, 4)
	if _, err := dc.SetPixel(9, 9, red); !errors.Is(err, gdi.ErrOutOfBounds) {
		t.Fatalf("SetPixel(outside) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := dc.GetPixel(1, 1); err != nil {
		t.Fatalf("GetPixel() error = %v", err)
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
}

func TestMetafileIsACopy(t *testing.T) {
	dc, rec, _ := newRecordingDC(t, 4, 4)
	if _, err := dc.MoveTo(1, 1); err != nil {
		t.Fatal(err)
	}
	mf := rec.Metafile()
	if _, err := dc.MoveTo(2, 2); err != nil {
		t.Fatal(err)
	}
	if len(mf.Records) != 2 {
		t.Errorf("earlier Metafile() grew to %d records", len(mf.Records))
	}
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", rec.Len())
	}
}

func drawScene(t *testing.T, dc *gdi.DC) {
	t.Helper()
	steps := []struct {
		name string
		fn   func() error
	}{
		{"Rectangle", func() error {
			dc.SelectBrush(gdi.SolidBrush(red))
			return dc.Rectangle(image.Rect(2, 2, 20, 14))
		}},
		{"Ellipse", func() error {
			dc.SelectBrush(gdi.SolidBrush(color.RGBA{G: 0x80, A: 0xff}))
			return dc.Ellipse(image.Rect(24, 4, 44, 20))
		}},
		{"PolyBezier", func() error {
			return dc.PolyBezier([]image.Point{{0, 40}, {10, 20}, {30, 60}, {47, 30}})
		}},
		{"InvertRgn", func() error {
			return dc.InvertRgn(region.Rect(image.Rect(10, 10, 30, 30)))
		}},
		{"Polygon", func() error {
			if _, err := dc.SetROP2(gdi.ROP2XorPen); err != nil {
				return err
			}
			return dc.Polygon([]image.Point{{5, 45}, {25, 35}, {40, 47}})
		}},
		{"GradientFill", func() error {
			if _, err := dc.SetROP2(gdi.ROP2CopyPen); err != nil {
				return err
			}
			verts := []gdi.TriVertex{
				{X: 30, Y: 30, Color: color.RGBA64{R: 0xffff, A: 0xffff}},
				{X: 46, Y: 36, Color: color.RGBA64{B: 0xffff, A: 0xffff}},
			}
			return dc.GradientFill(verts, []int{0, 1}, gdi.GradientRectV)
		}},
		{"PolyDraw", func() error {
			pts := []image.Point{{1, 1}, {8, 1}, {8, 8}}
			types := []gdi.PointType{gdi.PTMoveTo, gdi.PTLineTo, gdi.PTLineTo | gdi.PTCloseFigure}
			return dc.PolyDraw(pts, types)
		}},
		{"ExtFloodFill", func() error {
			dc.SelectBrush(gdi.SolidBrush(color.RGBA{B: 0xc0, A: 0xff}))
			return dc.ExtFloodFill(46, 2, gdi.White, gdi.FloodFillSurface)
		}},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			t.Fatalf("%s error = %v", s.name, err)
		}
	}
}

func TestRoundTripReplay(t *testing.T) {
	dc, rec, want := newRecordingDC(t, 48, 48)
	drawScene(t, dc)

	var buf bytes.Buffer
	if _, err := rec.Metafile().WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if !strings.Contains(buf.String(), "#ff0000ff") {
		t.Errorf("metafile does not spell colors as hex:\n%s", buf.String())
	}
	mf, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := raster.NewPixmap(48, 48)
	got.Clear(gdi.White)
	replay, err := gdi.NewDC(gdi.WithDrivers(raster.New(got)))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if err := Play(replay, mf); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !bytes.Equal(got.Data(), want.Data()) {
		t.Error("replayed pixels differ from the recorded drawing")
	}
	if replay.CurrentPosition() != dc.CurrentPosition() {
		t.Errorf("replay CurrentPosition() = %v, want %v", replay.CurrentPosition(), dc.CurrentPosition())
	}
}

func TestLoadVersion(t *testing.T) {
	_, err := Load(strings.NewReader("version: 2\nrecords: []\n"))
	if !errors.Is(err, ErrVersion) {
		t.Errorf("Load(version 2) error = %v, want ErrVersion", err)
	}
	if _, err := Load(strings.NewReader("version: [")); err == nil {
		t.Error("Load(malformed) error = nil")
	}
}

func TestPlayErrors(t *testing.T) {
	dc, _, _ := newRecordingDC(t, 4, 4)
	err := Play(dc, &Metafile{Version: Version, Records: []Record{{Op: "Bogus"}}})
	if !errors.Is(err, ErrUnknownOp) {
		t.Errorf("Play(unknown op) error = %v, want ErrUnknownOp", err)
	}
	err = Play(dc, &Metafile{Version: Version, Records: []Record{
		{Op: OpMoveTo, Point: image.Pt(1, 1)},
		{Op: OpPolyBezier, Points: []image.Point{{0, 0}, {1, 1}}},
	}})
	if !errors.Is(err, gdi.ErrInvalidPointCount) || !strings.Contains(err.Error(), "record 1") {
		t.Errorf("Play(bad bezier) error = %v, want ErrInvalidPointCount at record 1", err)
	}
}

func TestRegistered(t *testing.T) {
	if !gdi.IsRegistered("record") {
		t.Fatal(`"record" driver not registered`)
	}
	dc, err := gdi.Open(raster.NewPixmap(4, 4), []string{"record", "raster"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := dc.Chain(); len(got) < 2 || got[0] != "record" || got[1] != "raster" {
		t.Errorf("Chain() = %v, want record then raster", got)
	}
}

// flakyPoly strokes nothing and fails the PolyPolyline call with index
// failAt.
type flakyPoly struct {
	calls  int
	failAt int
}

var errFlaky = errors.New("flaky driver")

func (*flakyPoly) Name() string { return "flaky" }

func (*flakyPoly) PolyPolygon(*gdi.Device, []image.Point, []int) error { return nil }

func (f *flakyPoly) PolyPolyline(*gdi.Device, []image.Point, []int) error {
	defer func() { f.calls++ }()
	if f.calls == f.failAt {
		return errFlaky
	}
	return nil
}

func TestRecordsPartialPolyDraw(t *testing.T) {
	rec := New()
	dc, err := gdi.NewDC(gdi.WithDrivers(rec, &flakyPoly{failAt: 1}))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	pts := []image.Point{{0, 0}, {5, 0}, {10, 10}, {20, 20}}
	types := []gdi.PointType{gdi.PTMoveTo, gdi.PTLineTo, gdi.PTMoveTo, gdi.PTLineTo}
	err = dc.PolyDraw(pts, types)
	var se *gdi.StrokeError
	if !errors.As(err, &se) || !se.Drawn {
		t.Fatalf("PolyDraw() error = %v, want a partial *StrokeError", err)
	}
	if got, want := ops(rec.Metafile()), []string{OpState, OpPolyDraw}; !slices.Equal(got, want) {
		t.Errorf("recorded %v, want %v", got, want)
	}

	// A stroke that fails before drawing anything is not recorded.
	rec.Reset()
	dc, err = gdi.NewDC(gdi.WithDrivers(rec, &flakyPoly{failAt: 0}))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if err := dc.PolyDraw(pts, types); !errors.Is(err, errFlaky) {
		t.Fatalf("PolyDraw() error = %v, want the driver error", err)
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d after a failed stroke, want 0", rec.Len())
	}
}
