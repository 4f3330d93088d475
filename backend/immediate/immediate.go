// Package immediate defines the immediate-mode native API used by wdraw and
// provides a CPU implementation of it.
//
// The API is a flat, handle-based interface in the style of GDI+: objects
// are referenced by opaque handles, every call returns a Status, and brushes
// are destroyed with an explicit DeleteBrush. Handles are only meaningful to
// the Graphics that created them.
package immediate

import (
	"fmt"
	"image"
	"image/color"
)

// ARGB is a packed 0xAARRGGBB color with straight alpha.
type ARGB uint32

// A returns the alpha component.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c ARGB) B() uint8 { return uint8(c) }

// NRGBA converts c to the standard library's straight-alpha color.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// PointF is a point in device coordinates.
type PointF struct {
	X, Y float32
}

// Brush is an opaque brush handle. The zero handle is never valid.
type Brush uintptr

// WrapMode defines how a line gradient repeats outside its axis.
type WrapMode int

const (
	// WrapModeTile repeats the gradient.
	WrapModeTile WrapMode = iota
	// WrapModeTileFlipX repeats the gradient, mirroring every other period.
	WrapModeTileFlipX
	// WrapModeTileFlipY behaves like WrapModeTile for line gradients.
	WrapModeTileFlipY
	// WrapModeTileFlipXY behaves like WrapModeTileFlipX for line gradients.
	WrapModeTileFlipXY
	// WrapModeClamp extends the edge colors.
	WrapModeClamp
)

// Status is the result code of every Graphics call.
// Status implements error so non-Ok results can be wrapped and matched with
// errors.Is.
type Status int

// Status codes.
const (
	Ok Status = iota
	GenericError
	InvalidParameter
	OutOfMemory
	ObjectBusy
	InsufficientBuffer
	NotImplemented
	WrongState
)

// Error implements error.
func (s Status) Error() string {
	switch s {
	case Ok:
		return "immediate: ok"
	case GenericError:
		return "immediate: generic error"
	case InvalidParameter:
		return "immediate: invalid parameter"
	case OutOfMemory:
		return "immediate: out of memory"
	case ObjectBusy:
		return "immediate: object busy"
	case InsufficientBuffer:
		return "immediate: insufficient buffer"
	case NotImplemented:
		return "immediate: not implemented"
	case WrongState:
		return "immediate: wrong state"
	default:
		return fmt.Sprintf("immediate: status %d", int(s))
	}
}

// Graphics is the immediate-mode drawing API.
type Graphics interface {
	CreateSolidFill(c ARGB) (Brush, Status)
	SetSolidFillColor(b Brush, c ARGB) Status

	// CreateLineBrush creates a two-color gradient along p0-p1.
	CreateLineBrush(p0, p1 PointF, c0, c1 ARGB, wrap WrapMode) (Brush, Status)

	// SetLinePresetBlend replaces the two-color ramp of a line brush with a
	// multi-color ramp. colors and positions are parallel.
	SetLinePresetBlend(b Brush, colors []ARGB, positions []float32) Status

	DeleteBrush(b Brush) Status

	Clear(c ARGB) Status
	FillRectangle(b Brush, x, y, width, height float32) Status

	// Image returns the current surface contents.
	Image() image.Image

	// Close releases the surface. Brush handles are independent of the
	// surface and must still be deleted.
	Close() Status
}
