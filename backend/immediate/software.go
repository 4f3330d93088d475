package immediate

import (
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// Software is a Graphics that paints into an *image.RGBA on the CPU.
//
// Coverage is computed by golang.org/x/image/vector and composited with
// source-over. Software is safe for concurrent use; calls are serialized.
type Software struct {
	mu      sync.Mutex
	dst     *image.RGBA
	brushes map[Brush]brushObject
	next    Brush
	closed  bool
}

// Ensure Software implements Graphics.
var _ Graphics = (*Software)(nil)

// NewSoftware creates a Software graphics with its own surface.
// A non-positive size yields InvalidParameter.
func NewSoftware(width, height int) (*Software, error) {
	if width <= 0 || height <= 0 {
		return nil, InvalidParameter
	}
	return NewSoftwareFor(image.NewRGBA(image.Rect(0, 0, width, height))), nil
}

// NewSoftwareFor creates a Software graphics that paints into dst.
// dst stays owned by the caller.
func NewSoftwareFor(dst *image.RGBA) *Software {
	return &Software{
		dst:     dst,
		brushes: make(map[Brush]brushObject),
	}
}

// LiveBrushes returns the number of brush handles not yet deleted.
func (s *Software) LiveBrushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.brushes)
}

// add registers obj and returns its new handle. s.mu must be held.
func (s *Software) add(obj brushObject) Brush {
	s.next++
	s.brushes[s.next] = obj
	return s.next
}

// CreateSolidFill implements Graphics.
func (s *Software) CreateSolidFill(c ARGB) (Brush, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, WrongState
	}
	return s.add(&solidFill{color: c}), Ok
}

// SetSolidFillColor implements Graphics.
func (s *Software) SetSolidFillColor(b Brush, c ARGB) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sf, ok := s.brushes[b].(*solidFill)
	if !ok {
		return InvalidParameter
	}
	sf.color = c
	return Ok
}

// CreateLineBrush implements Graphics.
func (s *Software) CreateLineBrush(p0, p1 PointF, c0, c1 ARGB, wrap WrapMode) (Brush, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, WrongState
	}
	if wrap < WrapModeTile || wrap > WrapModeClamp {
		return 0, InvalidParameter
	}
	if p0 == p1 {
		return 0, InvalidParameter
	}
	lg := &lineGradient{
		p0:   p0,
		p1:   p1,
		wrap: wrap,
		ramp: []blendStop{{pos: 0, color: c0}, {pos: 1, color: c1}},
	}
	return s.add(lg), Ok
}

// SetLinePresetBlend implements Graphics.
// It needs at least two entries, parallel slices and positions in [0, 1].
func (s *Software) SetLinePresetBlend(b Brush, colors []ARGB, positions []float32) Status {
	if len(colors) < 2 || len(colors) != len(positions) {
		return InvalidParameter
	}
	ramp := make([]blendStop, len(colors))
	for i := range colors {
		p := positions[i]
		if !(p >= 0 && p <= 1) {
			return InvalidParameter
		}
		ramp[i] = blendStop{pos: p, color: colors[i]}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lg, ok := s.brushes[b].(*lineGradient)
	if !ok {
		return InvalidParameter
	}
	lg.ramp = ramp
	return Ok
}

// DeleteBrush implements Graphics.
func (s *Software) DeleteBrush(b Brush) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brushes[b]; !ok {
		return InvalidParameter
	}
	delete(s.brushes, b)
	return Ok
}

// Clear implements Graphics.
func (s *Software) Clear(c ARGB) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return WrongState
	}
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	return Ok
}

// FillRectangle implements Graphics.
func (s *Software) FillRectangle(b Brush, x, y, width, height float32) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return WrongState
	}
	obj, ok := s.brushes[b]
	if !ok {
		return InvalidParameter
	}
	if !finite(x, y, width, height) {
		return InvalidParameter
	}
	if width == 0 || height == 0 {
		return Ok
	}

	bounds := s.dst.Bounds()
	x0, x1 := clampSpan(x, x+width, bounds.Min.X, bounds.Max.X)
	y0, y1 := clampSpan(y, y+height, bounds.Min.Y, bounds.Max.Y)
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
	r.Draw(s.dst, bounds, obj.source(), bounds.Min)
	return Ok
}

// Image implements Graphics. The returned image is the live surface.
func (s *Software) Image() image.Image {
	return s.dst
}

// Close implements Graphics. Outstanding handles can still be deleted.
func (s *Software) Close() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return Ok
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// clampSpan orders a and b and clamps both into [lo, hi], returning them
// relative to lo.
func clampSpan(a, b float32, lo, hi int) (float32, float32) {
	if a > b {
		a, b = b, a
	}
	l, h := float32(lo), float32(hi)
	a = min(max(a, l), h)
	b = min(max(b, l), h)
	return a - l, b - l
}

// brushObject is the object behind a brush handle.
type brushObject interface {
	// source returns the paint source in surface coordinates.
	source() image.Image
}

type solidFill struct {
	color ARGB
}

func (f *solidFill) source() image.Image {
	return image.NewUniform(f.color.NRGBA())
}
