package wdraw

import (
	"image/color"

	"github.com/gogpu/wdraw/backend/immediate"
	"github.com/gogpu/wdraw/backend/retained"
)

// Color is a packed 0xAARRGGBB color with straight (non-premultiplied)
// alpha. Color implements color.Color.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)

// ARGB packs the given components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// colorF converts c to the retained backend's float color.
func (c Color) colorF() retained.ColorF {
	return retained.ColorF{
		R: float32(c.R()) / 255,
		G: float32(c.G()) / 255,
		B: float32(c.B()) / 255,
		A: float32(c.A()) / 255,
	}
}

// argb converts c to the immediate backend's color. Both use the same
// packing.
func (c Color) argb() immediate.ARGB {
	return immediate.ARGB(c)
}
