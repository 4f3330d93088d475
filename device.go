package wdraw

import "image"

// device is the backend variant behind a canvas. NewCanvas picks it once
// from the backend selector; nothing else branches on the selector.
type device interface {
	backend() Backend

	createSolidBrush(c Color) (nativeBrush, error)

	// createLinearGradientBrush expects at least two stops.
	createLinearGradientBrush(x0, y0, x1, y1 float32, stops []GradientStop) (nativeBrush, error)

	clear(c Color) error
	fillRect(b nativeBrush, x0, y0, x1, y1 float32) error
	image() image.Image
	close() error
}

// nativeBrush is a backend brush resource.
type nativeBrush interface {
	setColor(c Color) error
	release() error
}
