package wdraw

import "errors"

// Package errors. Native failures are wrapped, so errors.Is also matches
// the backend's own error values (for example immediate.Status codes).
var (
	// ErrTooFewStops is returned when a gradient has fewer than two stops.
	// No backend call is made.
	ErrTooFewStops = errors.New("wdraw: gradient needs at least two stops")

	// ErrBrushReleased is returned when a destroyed brush is used.
	ErrBrushReleased = errors.New("wdraw: brush already destroyed")

	// ErrNilBrush is returned when a nil *Brush is passed or used.
	ErrNilBrush = errors.New("wdraw: nil brush")

	// ErrNotSolidBrush is returned when SetColor is called on a gradient brush.
	ErrNotSolidBrush = errors.New("wdraw: not a solid brush")

	// ErrBackendMismatch is returned when a brush is used with a canvas of
	// another backend, or with a canvas other than the one that created it.
	ErrBackendMismatch = errors.New("wdraw: brush belongs to another backend")

	// ErrCanvasClosed is returned by operations on a closed canvas.
	ErrCanvasClosed = errors.New("wdraw: canvas closed")

	// ErrInvalidSize is returned when a canvas is created with a
	// non-positive size.
	ErrInvalidSize = errors.New("wdraw: invalid canvas size")

	// ErrUnknownBackend is returned for a backend value or name wdraw does
	// not know.
	ErrUnknownBackend = errors.New("wdraw: unknown backend")
)
