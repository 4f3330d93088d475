package retained

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/gg"
)

// gammaRamp evaluates a linear gradient whose stops are interpolated in
// gamma-encoded space, component by component on straight alpha.
type gammaRamp struct {
	x0, y0 float64
	dx, dy float64
	lenSq  float64
	stops  []GradientStop
	extend ExtendMode
}

func newGammaRamp(props LinearGradientBrushProperties, stops []GradientStop, extend ExtendMode) *gammaRamp {
	sorted := slices.Clone(stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	dx := float64(props.EndPoint.X - props.StartPoint.X)
	dy := float64(props.EndPoint.Y - props.StartPoint.Y)
	return &gammaRamp{
		x0:     float64(props.StartPoint.X),
		y0:     float64(props.StartPoint.Y),
		dx:     dx,
		dy:     dy,
		lenSq:  dx*dx + dy*dy,
		stops:  sorted,
		extend: extend,
	}
}

func (r *gammaRamp) colorAt(x, y float64) gg.RGBA {
	if len(r.stops) == 0 {
		return gg.Transparent
	}
	if r.lenSq == 0 {
		return toRGBA(r.stops[0].Color)
	}
	t := ((x-r.x0)*r.dx + (y-r.y0)*r.dy) / r.lenSq
	return toRGBA(sampleStops(r.stops, float32(extendT(t, r.extend))))
}

// extendT and sampleStops mirror wrapT and sampleRamp in backend/immediate.
// They stay separate: each backend owns its interpolation model.

// extendT maps an axis parameter into [0, 1].
func extendT(t float64, m ExtendMode) float64 {
	switch m {
	case ExtendWrap:
		return t - math.Floor(t)
	case ExtendMirror:
		period := math.Floor(t)
		t -= period
		if int64(period)%2 != 0 {
			t = 1 - t
		}
		return t
	default:
		return math.Max(0, math.Min(1, t))
	}
}

// sampleStops returns the color at t. stops must be sorted by position.
func sampleStops(stops []GradientStop, t float32) ColorF {
	i := sort.Search(len(stops), func(i int) bool {
		return stops[i].Position >= t
	})
	if i == 0 {
		return stops[0].Color
	}
	if i == len(stops) {
		return stops[len(stops)-1].Color
	}
	a, b := stops[i-1], stops[i]
	span := b.Position - a.Position
	if span <= 0 {
		return b.Color
	}
	f := (t - a.Position) / span
	return ColorF{
		R: a.Color.R + (b.Color.R-a.Color.R)*f,
		G: a.Color.G + (b.Color.G-a.Color.G)*f,
		B: a.Color.B + (b.Color.B-a.Color.B)*f,
		A: a.Color.A + (b.Color.A-a.Color.A)*f,
	}
}
