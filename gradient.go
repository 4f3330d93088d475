package wdraw

// GradientStop is one color anchor of a gradient. Offset is the normalized
// position along the gradient axis, 0 at the start point and 1 at the end.
type GradientStop struct {
	Color  Color
	Offset float32
}

// CreateLinearGradientBrushEx creates a gradient along (x0, y0)-(x1, y1)
// with the given stops.
//
// At least two stops are required; otherwise ErrTooFewStops is returned
// without touching the backend. Stops are passed on as given: ordering
// them by offset is the caller's job.
//
// The backends interpolate differently. The retained backend clamps outside
// the axis and interpolates with gamma 2.2. The immediate backend tiles and
// interpolates 8-bit components linearly, and rejects offsets outside
// [0, 1] as well as a zero-length axis ((x0, y0) == (x1, y1)); the retained
// backend paints the lowest-offset stop color for a zero-length axis. Output
// differs slightly between them.
func (c *Canvas) CreateLinearGradientBrushEx(x0, y0, x1, y1 float32, stops []GradientStop) (*Brush, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}
	if c.closed {
		return nil, ErrCanvasClosed
	}
	res, err := c.dev.createLinearGradientBrush(x0, y0, x1, y1, stops)
	if err != nil {
		return nil, err
	}
	return &Brush{kind: BrushLinearGradient, backend: c.Backend(), res: res}, nil
}

// CreateLinearGradientBrush creates a two-color gradient from c0 at
// (x0, y0) to c1 at (x1, y1).
func (c *Canvas) CreateLinearGradientBrush(x0, y0 float32, c0 Color, x1, y1 float32, c1 Color) (*Brush, error) {
	return c.CreateLinearGradientBrushEx(x0, y0, x1, y1, []GradientStop{
		{Color: c0, Offset: 0},
		{Color: c1, Offset: 1},
	})
}
