package gdi

import "github.com/gogpu/gputypes"

// DCOption configures a DC during creation.
// Use functional options to customize DC behavior.
//
// Example:
//
//	// Null device: every primitive succeeds and draws nothing
//	dc, err := gdi.NewDC()
//
//	// Recording layer above a raster driver
//	dc, err := gdi.NewDC(gdi.WithDrivers(record.New(), raster.New(img)))
type DCOption func(*dcOptions)

// dcOptions holds optional configuration for DC creation.
type dcOptions struct {
	drivers   []Driver
	flattener Flattener
	format    gputypes.TextureFormat
	hasFormat bool
	arcDir    ArcDirection
}

// defaultOptions returns the default DC options.
func defaultOptions() dcOptions {
	return dcOptions{
		arcDir: CounterClockwise,
	}
}

// WithDrivers installs drivers above the built-in fallback layer, top
// first. Operations are resolved from the first driver downwards.
//
// Example:
//
//	dc, err := gdi.NewDC(gdi.WithDrivers(myFilter, raster.New(img)))
func WithDrivers(drivers ...Driver) DCOption {
	return func(o *dcOptions) {
		o.drivers = append(o.drivers, drivers...)
	}
}

// WithFlattener sets the Bezier flattening parameters used by the fallback
// layer. Zero fields keep the defaults.
func WithFlattener(f Flattener) DCOption {
	return func(o *dcOptions) {
		o.flattener = f
	}
}

// WithPixelFormat selects the pixel format when the DC is created. The
// format is offered to the driver chain like SetPixelFormat; NewDC fails if
// it is rejected.
func WithPixelFormat(f gputypes.TextureFormat) DCOption {
	return func(o *dcOptions) {
		o.format = f
		o.hasFormat = true
	}
}

// WithArcDirection sets the initial arc direction.
func WithArcDirection(dir ArcDirection) DCOption {
	return func(o *dcOptions) {
		o.arcDir = dir
	}
}
