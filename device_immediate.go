package wdraw

import (
	"fmt"
	"image"

	"github.com/gogpu/wdraw/backend/immediate"
)

// immediateDevice drives an immediate.Graphics.
type immediateDevice struct {
	g immediate.Graphics
}

func (d *immediateDevice) backend() Backend { return BackendImmediate }

func (d *immediateDevice) createSolidBrush(c Color) (nativeBrush, error) {
	h, st := d.g.CreateSolidFill(c.argb())
	if st != immediate.Ok {
		traceFailure("CreateSolidFill", st)
		return nil, fmt.Errorf("wdraw: create solid brush: %w", st)
	}
	return &immediateBrush{g: d.g, h: h, solid: true}, nil
}

// createLinearGradientBrush creates a tiled two-color line brush from the
// end stops and applies the whole stop list as a preset blend. The line
// brush is deleted again if the blend is rejected.
func (d *immediateDevice) createLinearGradientBrush(x0, y0, x1, y1 float32, stops []GradientStop) (nativeBrush, error) {
	first, last := stops[0], stops[len(stops)-1]
	h, st := d.g.CreateLineBrush(
		immediate.PointF{X: x0, Y: y0},
		immediate.PointF{X: x1, Y: y1},
		first.Color.argb(), last.Color.argb(),
		immediate.WrapModeTile,
	)
	if st != immediate.Ok {
		traceFailure("CreateLineBrush", st)
		return nil, fmt.Errorf("wdraw: create line brush: %w", st)
	}

	colors := make([]immediate.ARGB, len(stops))
	positions := make([]float32, len(stops))
	for i, s := range stops {
		colors[i] = s.Color.argb()
		positions[i] = s.Offset
	}
	if st := d.g.SetLinePresetBlend(h, colors, positions); st != immediate.Ok {
		traceFailure("SetLinePresetBlend", st)
		d.g.DeleteBrush(h)
		return nil, fmt.Errorf("wdraw: set line preset blend: %w", st)
	}
	return &immediateBrush{g: d.g, h: h}, nil
}

func (d *immediateDevice) clear(c Color) error {
	if st := d.g.Clear(c.argb()); st != immediate.Ok {
		return fmt.Errorf("wdraw: clear: %w", st)
	}
	return nil
}

func (d *immediateDevice) fillRect(b nativeBrush, x0, y0, x1, y1 float32) error {
	ib, ok := b.(*immediateBrush)
	if !ok || ib.g != d.g {
		return ErrBackendMismatch
	}
	if st := d.g.FillRectangle(ib.h, x0, y0, x1-x0, y1-y0); st != immediate.Ok {
		return fmt.Errorf("wdraw: fill rectangle: %w", st)
	}
	return nil
}

func (d *immediateDevice) image() image.Image { return d.g.Image() }

func (d *immediateDevice) close() error {
	if st := d.g.Close(); st != immediate.Ok {
		return st
	}
	return nil
}

// immediateBrush is a brush handle together with the Graphics that owns it.
type immediateBrush struct {
	g     immediate.Graphics
	h     immediate.Brush
	solid bool
}

func (b *immediateBrush) setColor(c Color) error {
	if !b.solid {
		return ErrNotSolidBrush
	}
	if st := b.g.SetSolidFillColor(b.h, c.argb()); st != immediate.Ok {
		traceFailure("SetSolidFillColor", st)
		return fmt.Errorf("wdraw: set solid fill color: %w", st)
	}
	return nil
}

func (b *immediateBrush) release() error {
	if st := b.g.DeleteBrush(b.h); st != immediate.Ok {
		traceFailure("DeleteBrush", st)
		return fmt.Errorf("wdraw: delete brush: %w", st)
	}
	return nil
}
