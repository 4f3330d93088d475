package retained

import (
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Target is a RenderTarget backed by a gg drawing context.
//
// Brushes are evaluated by gg's rasterizer at fill time. Building with the
// wdraw_gpu tag registers gg's GPU accelerator for the same contexts.
type Target struct {
	dc     *gg.Context
	live   atomic.Int64
	closed bool
}

// Ensure Target implements RenderTarget.
var _ RenderTarget = (*Target)(nil)

// NewTarget creates a target with the given size in pixels.
func NewTarget(width, height int) (*Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Target{dc: gg.NewContext(width, height)}, nil
}

// SetLogger routes gg diagnostics to l. Pass nil to silence them.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// LiveResources returns the number of resources created by t that have not
// been freed yet.
func (t *Target) LiveResources() int {
	return int(t.live.Load())
}

// track counts a new resource and returns the function that uncounts it.
func (t *Target) track() func() {
	t.live.Add(1)
	return func() { t.live.Add(-1) }
}

// CreateSolidColorBrush implements RenderTarget.
func (t *Target) CreateSolidColorBrush(c ColorF) (SolidColorBrush, error) {
	if t.closed {
		return nil, ErrTargetClosed
	}
	b := &solidBrush{owner: t, color: c}
	b.init(t.track())
	return b, nil
}

// CreateGradientStopCollection implements RenderTarget.
// The stops are copied; the caller may reuse the slice.
func (t *Target) CreateGradientStopCollection(stops []GradientStop, gamma Gamma, extend ExtendMode) (GradientStopCollection, error) {
	if t.closed {
		return nil, ErrTargetClosed
	}
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	c := &stopCollection{
		owner:  t,
		stops:  slices.Clone(stops),
		gamma:  gamma,
		extend: extend,
	}
	c.init(t.track())
	return c, nil
}

// CreateLinearGradientBrush implements RenderTarget.
// The brush keeps its own reference to stops.
func (t *Target) CreateLinearGradientBrush(props LinearGradientBrushProperties, stops GradientStopCollection) (LinearGradientBrush, error) {
	if t.closed {
		return nil, ErrTargetClosed
	}
	sc, ok := stops.(*stopCollection)
	if !ok || sc.owner != t {
		return nil, ErrForeignResource
	}
	sc.AddRef()

	b := &linearBrush{owner: t, props: props, stops: sc}
	untrack := t.track()
	b.init(func() {
		sc.Release()
		untrack()
	})
	return b, nil
}

// Clear implements RenderTarget.
func (t *Target) Clear(c ColorF) error {
	if t.closed {
		return ErrTargetClosed
	}
	t.dc.ClearWithColor(toRGBA(c))
	return nil
}

// FillRectangle implements RenderTarget.
func (t *Target) FillRectangle(r RectF, b Brush) error {
	if t.closed {
		return ErrTargetClosed
	}
	p, ok := b.(painter)
	if !ok || p.target() != t {
		return ErrForeignResource
	}
	t.dc.SetFillBrush(p.paint())
	t.dc.DrawRectangle(
		float64(r.Left), float64(r.Top),
		float64(r.Right-r.Left), float64(r.Bottom-r.Top),
	)
	return t.dc.Fill()
}

// Image implements RenderTarget.
func (t *Target) Image() image.Image {
	return t.dc.Image()
}

// Close implements RenderTarget.
func (t *Target) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.dc.Close()
}

// painter is implemented by brushes that Target can draw with.
type painter interface {
	target() *Target
	paint() gg.Brush
}

// refCount implements Resource.
type refCount struct {
	refs atomic.Int32
	free func()
}

func (r *refCount) init(free func()) {
	r.refs.Store(1)
	r.free = free
}

// AddRef implements Resource.
func (r *refCount) AddRef() {
	r.refs.Add(1)
}

// Release implements Resource.
func (r *refCount) Release() uint32 {
	n := r.refs.Add(-1)
	if n < 0 {
		panic("retained: Release called on a freed resource")
	}
	if n == 0 && r.free != nil {
		r.free()
	}
	return uint32(n)
}

type solidBrush struct {
	refCount
	owner *Target
	color ColorF
}

func (b *solidBrush) SetColor(c ColorF) { b.color = c }
func (b *solidBrush) Color() ColorF     { return b.color }
func (b *solidBrush) target() *Target   { return b.owner }

func (b *solidBrush) paint() gg.Brush {
	return gg.Solid(toRGBA(b.color))
}

type stopCollection struct {
	refCount
	owner  *Target
	stops  []GradientStop
	gamma  Gamma
	extend ExtendMode
}

func (c *stopCollection) Stops() []GradientStop  { return slices.Clone(c.stops) }
func (c *stopCollection) Gamma() Gamma           { return c.gamma }
func (c *stopCollection) ExtendMode() ExtendMode { return c.extend }

type linearBrush struct {
	refCount
	owner *Target
	props LinearGradientBrushProperties
	stops *stopCollection
}

func (b *linearBrush) StartPoint() Point2F { return b.props.StartPoint }
func (b *linearBrush) EndPoint() Point2F   { return b.props.EndPoint }
func (b *linearBrush) target() *Target     { return b.owner }

func (b *linearBrush) GradientStopCollection() GradientStopCollection {
	return b.stops
}

// paint maps the brush onto a gg brush. gg's own linear gradient
// interpolates in linear light, so only Gamma10 can use it directly.
func (b *linearBrush) paint() gg.Brush {
	s, e := b.props.StartPoint, b.props.EndPoint
	if b.stops.gamma == Gamma10 {
		g := gg.NewLinearGradientBrush(float64(s.X), float64(s.Y), float64(e.X), float64(e.Y))
		g.SetExtend(ggExtend(b.stops.extend))
		for _, st := range b.stops.stops {
			g.AddColorStop(float64(st.Position), toRGBA(st.Color))
		}
		return g
	}
	ramp := newGammaRamp(b.props, b.stops.stops, b.stops.extend)
	return gg.NewCustomBrush(ramp.colorAt).WithName("linear-gamma2.2")
}

func ggExtend(m ExtendMode) gg.ExtendMode {
	switch m {
	case ExtendWrap:
		return gg.ExtendRepeat
	case ExtendMirror:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

func toRGBA(c ColorF) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
