// Package gdi provides device-independent 2D drawing primitives dispatched
// through a chain of pluggable drivers.
//
// # Overview
//
// A DC (device context) holds the drawing state and an ordered chain of
// drivers. Each drawing call goes to the nearest driver in the chain that
// implements it. The bottom of every chain is a built-in fallback layer that
// rebuilds composite operations (AngleArc, ArcTo, the region fills, the
// Bezier and *To poly operations, PolyDraw) from simpler ones, so a driver
// only needs to implement the primitives it can do natively.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gdi"
//		"github.com/gogpu/gdi/driver/raster"
//	)
//
//	pm := raster.NewPixmap(256, 256)
//	dc, err := gdi.NewDC(gdi.WithDrivers(raster.New(pm)))
//	if err != nil {
//		return err
//	}
//	dc.MoveTo(10, 10)
//	dc.PolyBezierTo([]image.Point{{80, 200}, {180, -40}, {240, 120}})
//	pm.SavePNG("curve.png")
//
// # Coordinate System
//
// All coordinates are integer device pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - AngleArc angles in degrees, 0 is right, increase counter-clockwise
//
// There are no transforms and no anti-aliasing.
//
// # Bezier Flattening
//
// Curves are converted to polylines by a Flattener, which subdivides each
// cubic in fixed-point arithmetic until it is flat to within one pixel or
// eight levels deep. The result is deterministic for a given input.
//
// # Drivers
//
// Drivers implement any subset of the capability interfaces (LineDriver,
// ArcDriver, PolyDriver, ...). Driver packages register themselves by name
// so that Open can assemble a chain:
//   - driver/raster: draws onto any draw.Image
//   - driver/record: records calls as a YAML metafile and plays them back
//   - driver/display: adapts a tinygo display to a draw.Image target
package gdi

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
