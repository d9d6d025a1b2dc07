package gdi

import (
	"errors"
	"fmt"
	"image"
)

// Common drawing errors.
var (
	// ErrInvalidPointCount is returned when a point buffer or a counts array
	// does not have the shape an operation requires (for example a Bezier
	// chain whose length is not 3n+1).
	ErrInvalidPointCount = errors.New("gdi: invalid point count")

	// ErrInvalidPointTypes is returned by PolyDraw when the point-type
	// sequence is malformed, such as a BezierTo outside a run of three.
	ErrInvalidPointTypes = errors.New("gdi: invalid point types")

	// ErrDegenerateRect is returned by the arc family when the bounding
	// rectangle has zero width or height.
	ErrDegenerateRect = errors.New("gdi: degenerate bounding rectangle")

	// ErrInvalidPolyOp is returned by PolyPolyDraw for an unknown selector.
	ErrInvalidPolyOp = errors.New("gdi: invalid poly operation")

	// ErrInvalidArgument is returned for out-of-range scalar arguments
	// (negative radius, bad gradient mesh indices, unknown modes).
	ErrInvalidArgument = errors.New("gdi: invalid argument")

	// ErrNotSupported is returned when no driver in the chain can perform
	// an operation and the null fallback has no meaningful result.
	ErrNotSupported = errors.New("gdi: operation not supported")

	// ErrPixelFormatSet is returned when a different pixel format is
	// requested for a DC whose format has already been chosen.
	ErrPixelFormatSet = errors.New("gdi: pixel format already set")

	// ErrOutOfBounds is returned by pixel operations outside the surface.
	ErrOutOfBounds = errors.New("gdi: coordinates out of bounds")

	// ErrUnknownDriver is returned by Open for a name nothing registered.
	ErrUnknownDriver = errors.New("gdi: unknown driver")

	// ErrNoCapability reports a driver chain in which no layer implements a
	// capability. It is a configuration error and is raised with panic.
	ErrNoCapability = errors.New("gdi: no driver implements capability")
)

// StrokeError reports a stroke that failed part way through a multi-figure
// operation such as PolyDraw. Figures before the failing one were drawn;
// Last is the final point of the last figure that was drawn.
type StrokeError struct {
	Drawn bool
	Last  image.Point
	Err   error
}

func (e *StrokeError) Error() string {
	if !e.Drawn {
		return fmt.Sprintf("gdi: stroke failed: %v", e.Err)
	}
	return fmt.Sprintf("gdi: stroke failed after reaching %v: %v", e.Last, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *StrokeError) Unwrap() error {
	return e.Err
}
