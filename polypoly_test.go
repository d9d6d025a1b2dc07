package gdi

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/gogpu/gdi/region"
)

// bezierStub records PolyBezier and PolyBezierTo calls without drawing.
type bezierStub struct {
	calls [][]image.Point
	err   error
}

func (*bezierStub) Name() string { return "bezier-stub" }

func (b *bezierStub) PolyBezier(_ *Device, pts []image.Point) error {
	b.calls = append(b.calls, slices.Clone(pts))
	return b.err
}

func (b *bezierStub) PolyBezierTo(_ *Device, pts []image.Point) error {
	b.calls = append(b.calls, slices.Clone(pts))
	return b.err
}

func newBezierDC(t *testing.T) (*DC, *bezierStub) {
	t.Helper()
	stub := &bezierStub{}
	dc, err := NewDC(WithDrivers(stub))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	return dc, stub
}

func points(n int) []image.Point {
	pts := make([]image.Point, n)
	for i := range pts {
		pts[i] = image.Pt(i*10, i*i)
	}
	return pts
}

func TestRouterBezierCount(t *testing.T) {
	tests := []struct {
		count    int
		dispatch bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{3, false},
		{4, true},
		{5, false},
		{6, false},
		{7, true},
		{10, true},
	}
	for _, tt := range tests {
		dc, stub := newBezierDC(t)
		pts := points(tt.count)
		_, err := dc.PolyPolyDraw(OpPolyBezier, pts, []int{tt.count})
		if tt.dispatch {
			if err != nil {
				t.Errorf("PolyBezier(count %d) error = %v", tt.count, err)
			}
			if len(stub.calls) != 1 {
				t.Errorf("PolyBezier(count %d) dispatched %d times, want 1", tt.count, len(stub.calls))
			}
			if got := dc.CurrentPosition(); got != pts[tt.count-1] {
				t.Errorf("PolyBezier(count %d) CurrentPosition() = %v, want %v", tt.count, got, pts[tt.count-1])
			}
			continue
		}
		if !errors.Is(err, ErrInvalidPointCount) {
			t.Errorf("PolyBezier(count %d) error = %v, want ErrInvalidPointCount", tt.count, err)
		}
		if len(stub.calls) != 0 {
			t.Errorf("PolyBezier(count %d) dispatched to the driver", tt.count)
		}
		if got := dc.CurrentPosition(); got != (image.Point{}) {
			t.Errorf("PolyBezier(count %d) moved CurrentPosition() to %v", tt.count, got)
		}
	}
}

func TestRouterBezierToCount(t *testing.T) {
	for _, count := range []int{0, 1, 2, 4, 5} {
		dc, stub := newBezierDC(t)
		if _, err := dc.PolyPolyDraw(OpPolyBezierTo, points(count), []int{count}); !errors.Is(err, ErrInvalidPointCount) {
			t.Errorf("PolyBezierTo(count %d) error = %v, want ErrInvalidPointCount", count, err)
		}
		if len(stub.calls) != 0 {
			t.Errorf("PolyBezierTo(count %d) dispatched to the driver", count)
		}
	}
	for _, count := range []int{3, 6} {
		dc, stub := newBezierDC(t)
		pts := points(count)
		if err := dc.PolyBezierTo(pts); err != nil {
			t.Errorf("PolyBezierTo(count %d) error = %v", count, err)
		}
		if len(stub.calls) != 1 {
			t.Errorf("PolyBezierTo(count %d) dispatched %d times, want 1", count, len(stub.calls))
		}
		if got := dc.CurrentPosition(); got != pts[count-1] {
			t.Errorf("PolyBezierTo(count %d) CurrentPosition() = %v, want %v", count, got, pts[count-1])
		}
	}
}

func TestRouterSingleFigureOnly(t *testing.T) {
	dc, stub := newBezierDC(t)
	pts := points(8)
	for _, op := range []PolyOp{OpPolyBezier, OpPolyBezierTo, OpPolylineTo} {
		if _, err := dc.PolyPolyDraw(op, pts, []int{4, 4}); !errors.Is(err, ErrInvalidPointCount) {
			t.Errorf("%v with two counts error = %v, want ErrInvalidPointCount", op, err)
		}
	}
	if len(stub.calls) != 0 {
		t.Errorf("driver called %d times, want 0", len(stub.calls))
	}
}

func TestRouterBezierFailureKeepsPosition(t *testing.T) {
	dc, stub := newBezierDC(t)
	stub.err = errSpy
	if err := dc.PolyBezier(points(4)); !errors.Is(err, errSpy) {
		t.Errorf("PolyBezier() error = %v, want driver error", err)
	}
	if got := dc.CurrentPosition(); got != (image.Point{}) {
		t.Errorf("CurrentPosition() = %v, want unchanged", got)
	}
}

func TestRouterPolyPolyline(t *testing.T) {
	dc, spy := newSpyDC(t)
	pts := points(5)
	if err := dc.PolyPolyline(pts, []int{2, 3}); err != nil {
		t.Fatalf("PolyPolyline() error = %v", err)
	}
	if len(spy.calls) != 1 || !slices.Equal(spy.calls[0].counts, []int{2, 3}) {
		t.Errorf("driver calls = %+v, want PolyPolyline with counts [2 3]", spy.calls)
	}

	bad := []struct {
		name   string
		op     PolyOp
		counts []int
	}{
		{"no figures", OpPolyPolyline, nil},
		{"one-point polyline", OpPolyPolyline, []int{1, 2}},
		{"one-point polygon", OpPolyPolygon, []int{2, 1}},
		{"counts exceed points", OpPolyPolygon, []int{3, 3}},
		{"negative count", OpPolyPolyline, []int{-1, 3}},
	}
	for _, tt := range bad {
		spy.calls = nil
		if _, err := dc.PolyPolyDraw(tt.op, pts, tt.counts); !errors.Is(err, ErrInvalidPointCount) {
			t.Errorf("%s: error = %v, want ErrInvalidPointCount", tt.name, err)
		}
		if len(spy.calls) != 0 {
			t.Errorf("%s: driver calls = %v, want none", tt.name, spy.ops())
		}
	}
}

func TestRouterPolylineTo(t *testing.T) {
	dc, spy := newSpyDC(t)
	if _, err := dc.MoveTo(1, 2); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	spy.calls = nil

	if err := dc.PolylineTo([]image.Point{{5, 5}, {9, 2}}); err != nil {
		t.Fatalf("PolylineTo() error = %v", err)
	}
	want := []image.Point{{1, 2}, {5, 5}, {9, 2}}
	if len(spy.calls) != 1 || !slices.Equal(spy.calls[0].pts, want) {
		t.Errorf("driver calls = %+v, want PolyPolyline %v", spy.calls, want)
	}
	if got := dc.CurrentPosition(); got != image.Pt(9, 2) {
		t.Errorf("CurrentPosition() = %v, want (9,2)", got)
	}

	// The fallback cannot draw an empty continuation.
	if err := dc.PolylineTo(nil); !errors.Is(err, ErrInvalidPointCount) {
		t.Errorf("PolylineTo(nil) error = %v, want ErrInvalidPointCount", err)
	}
	if got := dc.CurrentPosition(); got != image.Pt(9, 2) {
		t.Errorf("CurrentPosition() after empty PolylineTo = %v, want (9,2)", got)
	}
}

func TestRouterPolyBezierThroughFallback(t *testing.T) {
	dc, spy := newSpyDC(t)
	pts := []image.Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}
	if err := dc.PolyBezier(pts); err != nil {
		t.Fatalf("PolyBezier() error = %v", err)
	}
	want := []image.Point{{0, 0}, {30, 0}}
	if len(spy.calls) != 1 || !slices.Equal(spy.calls[0].pts, want) {
		t.Errorf("driver calls = %+v, want PolyPolyline %v", spy.calls, want)
	}
	if got := dc.CurrentPosition(); got != image.Pt(30, 0) {
		t.Errorf("CurrentPosition() = %v, want (30,0)", got)
	}
}

func TestRouterPolyBezierToThroughFallback(t *testing.T) {
	dc, spy := newSpyDC(t)
	if _, err := dc.MoveTo(0, 5); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}
	spy.calls = nil
	if err := dc.PolyBezierTo([]image.Point{{0, 15}, {0, 25}, {0, 35}}); err != nil {
		t.Fatalf("PolyBezierTo() error = %v", err)
	}
	want := []image.Point{{0, 5}, {0, 35}}
	if len(spy.calls) != 1 || !slices.Equal(spy.calls[0].pts, want) {
		t.Errorf("driver calls = %+v, want PolyPolyline %v", spy.calls, want)
	}
}

func TestRouterPolygonRgn(t *testing.T) {
	dc, spy := newSpyDC(t)
	pts := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	rgn, err := dc.PolyPolygonRgn(pts, []int{4})
	if err != nil {
		t.Fatalf("PolyPolygonRgn() error = %v", err)
	}
	if !rgn.Equal(region.Rect(image.Rect(0, 0, 10, 10))) {
		t.Errorf("PolyPolygonRgn() = %v, want (0,0)-(10,10)", rgn.Rects())
	}
	if len(spy.calls) != 0 {
		t.Errorf("PolyPolygonRgn() called the driver: %v", spy.ops())
	}
	if _, err := dc.PolyPolygonRgn(pts, []int{0}); !errors.Is(err, ErrInvalidPointCount) {
		t.Errorf("PolyPolygonRgn(empty polygon) error = %v, want ErrInvalidPointCount", err)
	}
}

func TestRouterUnknownOp(t *testing.T) {
	dc, _ := newSpyDC(t)
	if _, err := dc.PolyPolyDraw(PolyOp(42), points(4), []int{4}); !errors.Is(err, ErrInvalidPolyOp) {
		t.Errorf("PolyPolyDraw(42) error = %v, want ErrInvalidPolyOp", err)
	}
	if got := PolyOp(42).String(); got != "Unknown" {
		t.Errorf("PolyOp(42).String() = %q, want Unknown", got)
	}
}
