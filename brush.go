package wdraw

import "io"

// BrushKind is the kind of paint a brush produces.
type BrushKind int

const (
	// BrushSolid paints one color.
	BrushSolid BrushKind = iota
	// BrushLinearGradient paints a gradient along an axis.
	BrushLinearGradient
)

// String returns the kind name.
func (k BrushKind) String() string {
	switch k {
	case BrushSolid:
		return "solid"
	case BrushLinearGradient:
		return "linear-gradient"
	default:
		return "unknown"
	}
}

// Brush owns one native brush resource. It is usable only with the canvas
// that created it and must be destroyed exactly once, by Destroy or Close.
//
// A Brush is not safe for concurrent use.
type Brush struct {
	kind     BrushKind
	backend  Backend
	res      nativeBrush
	released bool
}

// Ensure Brush implements io.Closer.
var _ io.Closer = (*Brush)(nil)

// Kind returns the brush kind.
func (b *Brush) Kind() BrushKind {
	return b.kind
}

// Backend returns the backend the brush was created on.
func (b *Brush) Backend() Backend {
	return b.backend
}

// CreateSolidBrush creates a brush painting col.
//
//	b, err := c.CreateSolidBrush(wdraw.RGB(255, 0, 0))
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
func (c *Canvas) CreateSolidBrush(col Color) (*Brush, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	res, err := c.dev.createSolidBrush(col)
	if err != nil {
		return nil, err
	}
	return &Brush{kind: BrushSolid, backend: c.Backend(), res: res}, nil
}

// SetColor changes the color of a solid brush in place.
// Gradient brushes yield ErrNotSolidBrush.
func (b *Brush) SetColor(col Color) error {
	if b == nil {
		return ErrNilBrush
	}
	if b.released {
		return ErrBrushReleased
	}
	if b.kind != BrushSolid {
		return ErrNotSolidBrush
	}
	return b.res.setColor(col)
}

// Destroy releases the native resource. Later calls return
// ErrBrushReleased.
func (b *Brush) Destroy() error {
	if b == nil {
		return ErrNilBrush
	}
	if b.released {
		return ErrBrushReleased
	}
	b.released = true
	return b.res.release()
}

// Close is Destroy, for use with defer and io.Closer.
func (b *Brush) Close() error {
	return b.Destroy()
}
