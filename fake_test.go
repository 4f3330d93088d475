package wdraw

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/wdraw/backend/immediate"
	"github.com/gogpu/wdraw/backend/retained"
)

var errFakeAlloc = errors.New("fake: allocation failed")

// fakeTarget is a retained.RenderTarget test double that counts calls and
// live resources and can be told to fail.
type fakeTarget struct {
	calls      int
	live       int
	fills      int
	closed     bool
	failSolid  bool
	failStops  bool
	failLinear bool

	lastStops *fakeStops
}

func (t *fakeTarget) CreateSolidColorBrush(c retained.ColorF) (retained.SolidColorBrush, error) {
	t.calls++
	if t.failSolid {
		return nil, errFakeAlloc
	}
	b := &fakeSolid{color: c}
	b.init(t, nil)
	return b, nil
}

func (t *fakeTarget) CreateGradientStopCollection(stops []retained.GradientStop, gamma retained.Gamma, extend retained.ExtendMode) (retained.GradientStopCollection, error) {
	t.calls++
	if t.failStops {
		return nil, errFakeAlloc
	}
	sc := &fakeStops{stops: append([]retained.GradientStop(nil), stops...), gamma: gamma, extend: extend}
	sc.init(t, nil)
	t.lastStops = sc
	return sc, nil
}

func (t *fakeTarget) CreateLinearGradientBrush(props retained.LinearGradientBrushProperties, stops retained.GradientStopCollection) (retained.LinearGradientBrush, error) {
	t.calls++
	if t.failLinear {
		return nil, errFakeAlloc
	}
	sc := stops.(*fakeStops)
	sc.AddRef()
	b := &fakeLinear{props: props, sc: sc}
	b.init(t, func() { sc.Release() })
	return b, nil
}

func (t *fakeTarget) Clear(retained.ColorF) error {
	t.calls++
	return nil
}

func (t *fakeTarget) FillRectangle(retained.RectF, retained.Brush) error {
	t.calls++
	t.fills++
	return nil
}

func (t *fakeTarget) Image() image.Image { return image.NewRGBA(image.Rect(0, 0, 1, 1)) }

func (t *fakeTarget) Close() error {
	t.closed = true
	return nil
}

type fakeResource struct {
	refs   int
	owner  *fakeTarget
	onFree func()
}

func (r *fakeResource) init(owner *fakeTarget, onFree func()) {
	r.refs = 1
	r.owner = owner
	r.onFree = onFree
	owner.live++
}

func (r *fakeResource) AddRef() { r.refs++ }

func (r *fakeResource) Release() uint32 {
	r.refs--
	if r.refs == 0 {
		r.owner.live--
		if r.onFree != nil {
			r.onFree()
		}
	}
	return uint32(r.refs)
}

type fakeSolid struct {
	fakeResource
	color retained.ColorF
}

func (b *fakeSolid) SetColor(c retained.ColorF) { b.color = c }
func (b *fakeSolid) Color() retained.ColorF     { return b.color }

type fakeStops struct {
	fakeResource
	stops  []retained.GradientStop
	gamma  retained.Gamma
	extend retained.ExtendMode
}

func (s *fakeStops) Stops() []retained.GradientStop   { return s.stops }
func (s *fakeStops) Gamma() retained.Gamma            { return s.gamma }
func (s *fakeStops) ExtendMode() retained.ExtendMode { return s.extend }

type fakeLinear struct {
	fakeResource
	props retained.LinearGradientBrushProperties
	sc    *fakeStops
}

func (b *fakeLinear) StartPoint() retained.Point2F { return b.props.StartPoint }
func (b *fakeLinear) EndPoint() retained.Point2F   { return b.props.EndPoint }

func (b *fakeLinear) GradientStopCollection() retained.GradientStopCollection { return b.sc }

// fakeGraphics is an immediate.Graphics test double.
type fakeGraphics struct {
	calls     int
	fills     int
	closed    bool
	brushes   map[immediate.Brush]*fakeHandle
	next      immediate.Brush
	failSolid bool
	failLine  bool
	failBlend bool
}

type fakeHandle struct {
	solid     bool
	color     immediate.ARGB
	c0, c1    immediate.ARGB
	wrap      immediate.WrapMode
	colors    []immediate.ARGB
	positions []float32
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{brushes: make(map[immediate.Brush]*fakeHandle)}
}

func (g *fakeGraphics) add(h *fakeHandle) immediate.Brush {
	g.next++
	g.brushes[g.next] = h
	return g.next
}

func (g *fakeGraphics) CreateSolidFill(c immediate.ARGB) (immediate.Brush, immediate.Status) {
	g.calls++
	if g.failSolid {
		return 0, immediate.OutOfMemory
	}
	return g.add(&fakeHandle{solid: true, color: c}), immediate.Ok
}

func (g *fakeGraphics) SetSolidFillColor(b immediate.Brush, c immediate.ARGB) immediate.Status {
	g.calls++
	h, ok := g.brushes[b]
	if !ok || !h.solid {
		return immediate.InvalidParameter
	}
	h.color = c
	return immediate.Ok
}

func (g *fakeGraphics) CreateLineBrush(_, _ immediate.PointF, c0, c1 immediate.ARGB, wrap immediate.WrapMode) (immediate.Brush, immediate.Status) {
	g.calls++
	if g.failLine {
		return 0, immediate.OutOfMemory
	}
	return g.add(&fakeHandle{c0: c0, c1: c1, wrap: wrap}), immediate.Ok
}

func (g *fakeGraphics) SetLinePresetBlend(b immediate.Brush, colors []immediate.ARGB, positions []float32) immediate.Status {
	g.calls++
	if g.failBlend {
		return immediate.InvalidParameter
	}
	h, ok := g.brushes[b]
	if !ok || h.solid {
		return immediate.InvalidParameter
	}
	h.colors = append([]immediate.ARGB(nil), colors...)
	h.positions = append([]float32(nil), positions...)
	return immediate.Ok
}

func (g *fakeGraphics) DeleteBrush(b immediate.Brush) immediate.Status {
	g.calls++
	if _, ok := g.brushes[b]; !ok {
		return immediate.InvalidParameter
	}
	delete(g.brushes, b)
	return immediate.Ok
}

func (g *fakeGraphics) Clear(immediate.ARGB) immediate.Status {
	g.calls++
	return immediate.Ok
}

func (g *fakeGraphics) FillRectangle(b immediate.Brush, _, _, _, _ float32) immediate.Status {
	g.calls++
	if _, ok := g.brushes[b]; !ok {
		return immediate.InvalidParameter
	}
	g.fills++
	return immediate.Ok
}

func (g *fakeGraphics) Image() image.Image { return image.NewRGBA(image.Rect(0, 0, 1, 1)) }

func (g *fakeGraphics) Close() immediate.Status {
	g.closed = true
	return immediate.Ok
}

// doubles bundles one test double per backend. Only the one matching the
// selected backend is used by a canvas.
type doubles struct {
	rt *fakeTarget
	g  *fakeGraphics
}

func (d doubles) calls() int { return d.rt.calls + d.g.calls }
func (d doubles) live() int  { return d.rt.live + len(d.g.brushes) }

var allBackends = []Backend{BackendRetained, BackendImmediate}

// useBackend selects b for the duration of the test.
func useBackend(t *testing.T, b Backend) {
	t.Helper()
	if err := Initialize(WithBackend(b)); err != nil {
		t.Fatalf("Initialize(%v) error = %v", b, err)
	}
	t.Cleanup(Terminate)
}

// newFakeCanvas selects b and returns a canvas drawing into test doubles.
func newFakeCanvas(t *testing.T, b Backend) (*Canvas, doubles) {
	t.Helper()
	useBackend(t, b)
	d := doubles{rt: &fakeTarget{}, g: newFakeGraphics()}
	c, err := NewCanvas(0, 0, WithRetainedTarget(d.rt), WithImmediateGraphics(d.g))
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, d
}

// newRealCanvas selects b and returns a canvas on the default native
// implementation.
func newRealCanvas(t *testing.T, b Backend, w, h int) *Canvas {
	t.Helper()
	useBackend(t, b)
	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// diagHandler records wdraw diagnostics.
type diagHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *diagHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *diagHandler) Handle(_ context.Context, r slog.Record) error {
	if !strings.HasPrefix(r.Message, "wdraw:") || r.Level < slog.LevelWarn {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *diagHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *diagHandler) WithGroup(string) slog.Handler      { return h }

func (h *diagHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

// captureDiagnostics routes wdraw warnings to a diagHandler for the test.
func captureDiagnostics(t *testing.T) *diagHandler {
	t.Helper()
	h := &diagHandler{}
	orig := Logger()
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(orig) })
	return h
}
