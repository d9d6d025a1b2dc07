package gdi

import (
	"errors"
	"image"
	"slices"
	"testing"
)

func TestValidatePointTypes(t *testing.T) {
	const (
		M  = PTMoveTo
		L  = PTLineTo
		B  = PTBezierTo
		LC = PTLineTo | PTCloseFigure
		BC = PTBezierTo | PTCloseFigure
	)
	tests := []struct {
		name  string
		types []PointType
		ok    bool
	}{
		{"empty", nil, true},
		{"lines", []PointType{M, L, L, LC}, true},
		{"bezier run", []PointType{M, B, B, B}, true},
		{"closed bezier run", []PointType{M, B, B, BC, L}, true},
		{"two runs", []PointType{B, B, B, B, B, B}, true},
		{"short run", []PointType{M, B, L}, false},
		{"run of two at end", []PointType{M, B, B}, false},
		{"run of four", []PointType{M, B, B, B, B}, false},
		{"close inside run", []PointType{M, B, BC, B}, false},
		{"closed move", []PointType{M | PTCloseFigure, L}, false},
		{"close alone", []PointType{M, PTCloseFigure}, false},
		{"unknown", []PointType{M, 0x10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePointTypes(tt.types)
			if tt.ok && err != nil {
				t.Errorf("ValidatePointTypes(%v) error = %v, want nil", tt.types, err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidPointTypes) {
				t.Errorf("ValidatePointTypes(%v) error = %v, want ErrInvalidPointTypes", tt.types, err)
			}
		})
	}
}

func TestPolyDrawRejectsMalformed(t *testing.T) {
	dc, spy := newSpyDC(t)
	if _, err := dc.MoveTo(7, 8); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	spy.calls = nil

	pts := []image.Point{{0, 0}, {10, 10}, {20, 0}}
	types := []PointType{PTMoveTo, PTBezierTo, PTLineTo}
	if err := dc.PolyDraw(pts, types); !errors.Is(err, ErrInvalidPointTypes) {
		t.Errorf("PolyDraw() error = %v, want ErrInvalidPointTypes", err)
	}
	if got := dc.CurrentPosition(); got != image.Pt(7, 8) {
		t.Errorf("CurrentPosition() = %v, want (7,8)", got)
	}
	if len(spy.calls) != 0 {
		t.Errorf("driver calls = %v, want none", spy.ops())
	}
}

func TestPolyDrawLengthMismatch(t *testing.T) {
	dc, _ := newSpyDC(t)
	err := dc.PolyDraw([]image.Point{{1, 1}}, []PointType{PTLineTo, PTLineTo})
	if !errors.Is(err, ErrInvalidPointCount) {
		t.Errorf("PolyDraw() error = %v, want ErrInvalidPointCount", err)
	}
}

func TestPolyDrawFigures(t *testing.T) {
	dc, spy := newSpyDC(t)
	if _, err := dc.MoveTo(1, 1); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	spy.calls = nil

	pts := []image.Point{
		{2, 2},                                 // continues from (1,1)
		{10, 10}, {20, 10}, {20, 20},           // new closed figure
		{50, 50}, {60, 50}, {70, 50}, {80, 50}, // flat Bezier
	}
	types := []PointType{
		PTLineTo,
		PTMoveTo, PTLineTo, PTLineTo | PTCloseFigure,
		PTMoveTo, PTBezierTo, PTBezierTo, PTBezierTo,
	}
	if err := dc.PolyDraw(pts, types); err != nil {
		t.Fatalf("PolyDraw() error = %v", err)
	}

	want := [][]image.Point{
		{{1, 1}, {2, 2}},
		{{10, 10}, {20, 10}, {20, 20}, {10, 10}},
		{{50, 50}, {80, 50}},
	}
	if len(spy.calls) != len(want) {
		t.Fatalf("driver calls = %v, want %d PolyPolyline", spy.ops(), len(want))
	}
	for i, c := range spy.calls {
		if c.op != "PolyPolyline" || !slices.Equal(c.pts, want[i]) {
			t.Errorf("call %d = %s %v, want PolyPolyline %v", i, c.op, c.pts, want[i])
		}
	}
	if got := dc.CurrentPosition(); got != image.Pt(80, 50) {
		t.Errorf("CurrentPosition() = %v, want (80,50)", got)
	}
}

func TestPolyDrawClosedBezier(t *testing.T) {
	dc, spy := newSpyDC(t)
	pts := []image.Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {30, 30}}
	types := []PointType{PTMoveTo, PTBezierTo, PTBezierTo, PTBezierTo | PTCloseFigure, PTLineTo}
	if err := dc.PolyDraw(pts, types); err != nil {
		t.Fatalf("PolyDraw() error = %v", err)
	}
	want := []image.Point{{0, 0}, {30, 0}, {0, 0}, {30, 30}}
	if len(spy.calls) != 1 || !slices.Equal(spy.calls[0].pts, want) {
		t.Errorf("driver calls = %+v, want one PolyPolyline %v", spy.calls, want)
	}
}

func TestPolyDrawSinglePointFigures(t *testing.T) {
	dc, spy := newSpyDC(t)
	pts := []image.Point{{1, 1}, {2, 2}}
	types := []PointType{PTMoveTo, PTMoveTo}
	if err := dc.PolyDraw(pts, types); err != nil {
		t.Fatalf("PolyDraw() error = %v", err)
	}
	if len(spy.calls) != 0 {
		t.Errorf("driver calls = %v, want none for single-point figures", spy.ops())
	}
	if got := dc.CurrentPosition(); got != image.Pt(2, 2) {
		t.Errorf("CurrentPosition() = %v, want (2,2)", got)
	}
}

func TestPolyDrawStrokeFailure(t *testing.T) {
	dc, spy := newSpyDC(t)
	if _, err := dc.MoveTo(99, 99); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	spy.failAt["PolyPolyline"] = 2

	pts := []image.Point{{0, 0}, {5, 0}, {5, 5}, {10, 10}, {20, 20}}
	types := []PointType{PTMoveTo, PTLineTo, PTLineTo | PTCloseFigure, PTMoveTo, PTLineTo}
	err := dc.PolyDraw(pts, types)

	var se *StrokeError
	if !errors.As(err, &se) {
		t.Fatalf("PolyDraw() error = %v, want *StrokeError", err)
	}
	if !errors.Is(err, errSpy) {
		t.Errorf("PolyDraw() error does not wrap the driver error: %v", err)
	}
	if !se.Drawn || se.Last != image.Pt(0, 0) {
		t.Errorf("StrokeError = {Drawn: %v, Last: %v}, want {true, (0,0)}", se.Drawn, se.Last)
	}
	if got := dc.CurrentPosition(); got != image.Pt(0, 0) {
		t.Errorf("CurrentPosition() = %v, want end of the drawn figure (0,0)", got)
	}
}

func TestPolyDrawFirstStrokeFails(t *testing.T) {
	dc, spy := newSpyDC(t)
	if _, err := dc.MoveTo(3, 3); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	spy.failAt["PolyPolyline"] = 0

	err := dc.PolyDraw([]image.Point{{9, 9}}, []PointType{PTLineTo})
	var se *StrokeError
	if !errors.As(err, &se) || se.Drawn {
		t.Fatalf("PolyDraw() error = %v, want *StrokeError with nothing drawn", err)
	}
	if got := dc.CurrentPosition(); got != image.Pt(3, 3) {
		t.Errorf("CurrentPosition() = %v, want (3,3)", got)
	}
}

func TestDrawPath(t *testing.T) {
	dc, spy := newSpyDC(t)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	if err := dc.DrawPath(p); err != nil {
		t.Fatalf("DrawPath() error = %v", err)
	}
	want := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}}
	if len(spy.calls) != 1 || !slices.Equal(spy.calls[0].pts, want) {
		t.Errorf("driver calls = %+v, want one PolyPolyline %v", spy.calls, want)
	}
}
