package gdi

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

// formatDriver accepts one pixel format.
type formatDriver struct {
	accept gputypes.TextureFormat
	calls  int
}

func (*formatDriver) Name() string { return "format" }

func (d *formatDriver) SetPixelFormat(_ *Device, f gputypes.TextureFormat) error {
	d.calls++
	if f != d.accept {
		return ErrNotSupported
	}
	return nil
}

func TestDefaultOptions(t *testing.T) {
	dc, err := NewDC()
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if got := dc.ArcDirection(); got != CounterClockwise {
		t.Errorf("ArcDirection() = %v, want CounterClockwise", got)
	}
	if f := dc.Flattener(); f != (Flattener{}) {
		t.Errorf("Flattener() = %+v, want zero (defaults)", f)
	}
	if _, ok := dc.PixelFormat(); ok {
		t.Error("PixelFormat() reports a format on a new DC")
	}
}

func TestWithArcDirection(t *testing.T) {
	dc, err := NewDC(WithArcDirection(Clockwise))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if got := dc.ArcDirection(); got != Clockwise {
		t.Errorf("ArcDirection() = %v, want Clockwise", got)
	}

	// Unknown directions fall back to the default.
	dc, err = NewDC(WithArcDirection(ArcDirection(9)))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if got := dc.ArcDirection(); got != CounterClockwise {
		t.Errorf("ArcDirection() = %v, want CounterClockwise", got)
	}
}

func TestWithFlattener(t *testing.T) {
	f := Flattener{MaxDepth: 3, Tolerance: 2}
	dc, err := NewDC(WithFlattener(f))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if got := dc.Flattener(); got != f {
		t.Errorf("Flattener() = %+v, want %+v", got, f)
	}
}

func TestWithPixelFormat(t *testing.T) {
	drv := &formatDriver{accept: gputypes.TextureFormatRGBA8Unorm}
	dc, err := NewDC(WithDrivers(drv), WithPixelFormat(gputypes.TextureFormatRGBA8Unorm))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if f, ok := dc.PixelFormat(); !ok || f != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("PixelFormat() = %v, %v, want RGBA8Unorm, true", f, ok)
	}

	_, err = NewDC(WithDrivers(&formatDriver{accept: gputypes.TextureFormatRGBA8Unorm}),
		WithPixelFormat(gputypes.TextureFormatBGRA8Unorm))
	if !errors.Is(err, ErrNotSupported) {
		t.Errorf("NewDC(rejected format) error = %v, want ErrNotSupported", err)
	}
}

func TestWithDriversAccumulates(t *testing.T) {
	a, b := &lineOnly{}, newSpy()
	dc, err := NewDC(WithDrivers(a), WithDrivers(b))
	if err != nil {
		t.Fatalf("NewDC() error = %v", err)
	}
	if got := dc.Chain(); len(got) != 3 || got[0] != "line-only" || got[1] != "spy" {
		t.Errorf("Chain() = %v, want [line-only spy fallback]", got)
	}
}
