package wdraw

import (
	"log/slog"

	"github.com/gogpu/wdraw/backend/immediate"
	"github.com/gogpu/wdraw/backend/retained"
)

// InitOption configures Initialize.
type InitOption func(*initOptions)

type initOptions struct {
	backend Backend
	logger  *slog.Logger
}

func defaultInitOptions() initOptions {
	return initOptions{backend: BackendAuto}
}

// WithBackend selects the backend.
//
// Example:
//
//	// Force the immediate-mode backend.
//	err := wdraw.Initialize(wdraw.WithBackend(wdraw.BackendImmediate))
func WithBackend(b Backend) InitOption {
	return func(o *initOptions) {
		o.backend = b
	}
}

// WithLogger installs l as the wdraw logger (see SetLogger).
func WithLogger(l *slog.Logger) InitOption {
	return func(o *initOptions) {
		o.logger = l
	}
}

// CanvasOption configures NewCanvas.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	retainedTarget   retained.RenderTarget
	immediateSurface immediate.Graphics
}

// WithRetainedTarget makes the canvas draw into rt instead of a new
// gg-backed target. It only applies when the retained backend is selected.
// The canvas takes ownership of rt and closes it on Close.
func WithRetainedTarget(rt retained.RenderTarget) CanvasOption {
	return func(o *canvasOptions) {
		o.retainedTarget = rt
	}
}

// WithImmediateGraphics makes the canvas draw through g instead of a new
// software surface. It only applies when the immediate backend is selected.
// The canvas takes ownership of g and closes it on Close.
//
// Example:
//
//	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
//	c, err := wdraw.NewCanvas(640, 480,
//	    wdraw.WithImmediateGraphics(immediate.NewSoftwareFor(img)))
func WithImmediateGraphics(g immediate.Graphics) CanvasOption {
	return func(o *canvasOptions) {
		o.immediateSurface = g
	}
}
