package wdraw

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/wdraw/backend/retained"
)

// retainedDevice drives a retained.RenderTarget.
type retainedDevice struct {
	rt retained.RenderTarget
}

func (d *retainedDevice) backend() Backend { return BackendRetained }

func (d *retainedDevice) createSolidBrush(c Color) (nativeBrush, error) {
	b, err := d.rt.CreateSolidColorBrush(c.colorF())
	if err != nil {
		traceFailure("CreateSolidColorBrush", err)
		return nil, fmt.Errorf("wdraw: create solid brush: %w", err)
	}
	return &retainedBrush{res: b, solid: b}, nil
}

// createLinearGradientBrush builds a gamma 2.2, clamped stop collection and
// drops it as soon as the brush holds it.
func (d *retainedDevice) createLinearGradientBrush(x0, y0, x1, y1 float32, stops []GradientStop) (nativeBrush, error) {
	native := make([]retained.GradientStop, len(stops))
	for i, s := range stops {
		native[i] = retained.GradientStop{Position: s.Offset, Color: s.Color.colorF()}
	}

	sc, err := d.rt.CreateGradientStopCollection(native, retained.Gamma22, retained.ExtendClamp)
	if err != nil {
		traceFailure("CreateGradientStopCollection", err)
		return nil, fmt.Errorf("wdraw: create gradient stop collection: %w", err)
	}
	defer sc.Release()

	props := retained.LinearGradientBrushProperties{
		StartPoint: retained.Point2F{X: x0, Y: y0},
		EndPoint:   retained.Point2F{X: x1, Y: y1},
	}
	lb, err := d.rt.CreateLinearGradientBrush(props, sc)
	if err != nil {
		traceFailure("CreateLinearGradientBrush", err)
		return nil, fmt.Errorf("wdraw: create linear gradient brush: %w", err)
	}
	return &retainedBrush{res: lb}, nil
}

func (d *retainedDevice) clear(c Color) error {
	if err := d.rt.Clear(c.colorF()); err != nil {
		return fmt.Errorf("wdraw: clear: %w", err)
	}
	return nil
}

func (d *retainedDevice) fillRect(b nativeBrush, x0, y0, x1, y1 float32) error {
	rb, ok := b.(*retainedBrush)
	if !ok {
		return ErrBackendMismatch
	}
	r := retained.RectF{Left: x0, Top: y0, Right: x1, Bottom: y1}
	if err := d.rt.FillRectangle(r, rb.res); err != nil {
		if errors.Is(err, retained.ErrForeignResource) {
			return fmt.Errorf("%w: %w", ErrBackendMismatch, err)
		}
		return fmt.Errorf("wdraw: fill rectangle: %w", err)
	}
	return nil
}

func (d *retainedDevice) image() image.Image { return d.rt.Image() }

func (d *retainedDevice) close() error { return d.rt.Close() }

// retainedBrush holds one reference to a retained brush. solid is set for
// solid color brushes only.
type retainedBrush struct {
	res   retained.Brush
	solid retained.SolidColorBrush
}

func (b *retainedBrush) setColor(c Color) error {
	if b.solid == nil {
		return ErrNotSolidBrush
	}
	b.solid.SetColor(c.colorF())
	return nil
}

func (b *retainedBrush) release() error {
	b.res.Release()
	return nil
}
