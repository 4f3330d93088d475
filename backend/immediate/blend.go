package immediate

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// blendStop is one entry of a line brush color ramp.
type blendStop struct {
	pos   float32
	color ARGB
}

// lineGradient is the object behind a line brush handle. ramp starts as the
// two end colors and is replaced by SetLinePresetBlend.
type lineGradient struct {
	p0, p1 PointF
	wrap   WrapMode
	ramp   []blendStop
}

func (g *lineGradient) source() image.Image {
	sorted := make([]blendStop, len(g.ramp))
	copy(sorted, g.ramp)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].pos < sorted[j].pos })

	dx := float64(g.p1.X - g.p0.X)
	dy := float64(g.p1.Y - g.p0.Y)
	return &rampImage{
		x0:    float64(g.p0.X),
		y0:    float64(g.p0.Y),
		dx:    dx,
		dy:    dy,
		lenSq: dx*dx + dy*dy,
		wrap:  g.wrap,
		ramp:  sorted,
	}
}

// rampImage is an unbounded image sampling a line gradient at pixel centers.
type rampImage struct {
	x0, y0 float64
	dx, dy float64
	lenSq  float64
	wrap   WrapMode
	ramp   []blendStop
}

func (r *rampImage) ColorModel() color.Model { return color.NRGBAModel }

func (r *rampImage) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (r *rampImage) At(x, y int) color.Color {
	if r.lenSq == 0 {
		return r.ramp[0].color.NRGBA()
	}
	px := float64(x) + 0.5 - r.x0
	py := float64(y) + 0.5 - r.y0
	t := wrapT((px*r.dx+py*r.dy)/r.lenSq, r.wrap)
	return sampleRamp(r.ramp, float32(t)).NRGBA()
}

// wrapT and sampleRamp mirror extendT and sampleStops in backend/retained.
// They stay separate: each backend owns its interpolation model.

// wrapT maps an axis parameter into [0, 1].
func wrapT(t float64, mode WrapMode) float64 {
	switch mode {
	case WrapModeClamp:
		return math.Max(0, math.Min(1, t))
	case WrapModeTileFlipX, WrapModeTileFlipXY:
		period := math.Floor(t)
		t -= period
		if int64(period)%2 != 0 {
			t = 1 - t
		}
		return t
	default:
		return t - math.Floor(t)
	}
}

// sampleRamp interpolates the ramp linearly on straight 8-bit components.
// ramp must be sorted by position.
func sampleRamp(ramp []blendStop, t float32) ARGB {
	i := sort.Search(len(ramp), func(i int) bool { return ramp[i].pos >= t })
	if i == 0 {
		return ramp[0].color
	}
	if i == len(ramp) {
		return ramp[len(ramp)-1].color
	}
	a, b := ramp[i-1], ramp[i]
	span := b.pos - a.pos
	if span <= 0 {
		return b.color
	}
	f := (t - a.pos) / span
	return ARGB(uint32(lerp8(a.color.A(), b.color.A(), f))<<24 |
		uint32(lerp8(a.color.R(), b.color.R(), f))<<16 |
		uint32(lerp8(a.color.G(), b.color.G(), f))<<8 |
		uint32(lerp8(a.color.B(), b.color.B(), f)))
}

func lerp8(a, b uint8, f float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*f + 0.5)
}
