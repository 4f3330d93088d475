package wdraw

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/wdraw/backend/immediate"
	"github.com/gogpu/wdraw/backend/retained"
)

// Canvas is a render target that brushes are created for and drawn on.
// The backend is fixed when the canvas is created.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	dev    device
	closed bool
}

// Ensure Canvas implements io.Closer.
var _ io.Closer = (*Canvas)(nil)

// NewCanvas creates a canvas of the given size on the active backend
// (see Initialize).
//
//	c, err := wdraw.NewCanvas(640, 480)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}

	b := ActiveBackend()
	dev, err := newDevice(b, width, height, o)
	if err != nil {
		return nil, err
	}
	Logger().Debug("wdraw: canvas created", "backend", b, "width", width, "height", height)
	return &Canvas{width: width, height: height, dev: dev}, nil
}

func newDevice(b Backend, width, height int, o canvasOptions) (device, error) {
	switch b {
	case BackendRetained:
		if o.retainedTarget != nil {
			return &retainedDevice{rt: o.retainedTarget}, nil
		}
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
		}
		rt, err := retained.NewTarget(width, height)
		if err != nil {
			return nil, fmt.Errorf("wdraw: create retained target: %w", err)
		}
		return &retainedDevice{rt: rt}, nil

	case BackendImmediate:
		if o.immediateSurface != nil {
			return &immediateDevice{g: o.immediateSurface}, nil
		}
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
		}
		g, err := immediate.NewSoftware(width, height)
		if err != nil {
			return nil, fmt.Errorf("wdraw: create software graphics: %w", err)
		}
		return &immediateDevice{g: g}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}
}

// Backend returns the backend the canvas draws with.
func (c *Canvas) Backend() Backend {
	return c.dev.backend()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the whole canvas with col, replacing its contents.
func (c *Canvas) Clear(col Color) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.dev.clear(col)
}

// FillRect fills the rectangle (x0, y0)-(x1, y1) with b.
// b must have been created by c.
func (c *Canvas) FillRect(b *Brush, x0, y0, x1, y1 float32) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if b == nil {
		return ErrNilBrush
	}
	if b.released {
		return ErrBrushReleased
	}
	if b.backend != c.Backend() {
		return ErrBackendMismatch
	}
	return c.dev.fillRect(b.res, x0, y0, x1, y1)
}

// Image returns the canvas contents.
func (c *Canvas) Image() image.Image {
	return c.dev.image()
}

// EncodePNG writes the canvas contents as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// Close releases the native target. Brushes created for the canvas must
// still be destroyed. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.dev.close(); err != nil {
		return fmt.Errorf("wdraw: close canvas: %w", err)
	}
	return nil
}
