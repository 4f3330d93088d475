// Package retained defines the retained-mode native API used by wdraw and
// provides a default implementation built on github.com/gogpu/gg.
//
// The API follows the object model of retained 2D APIs such as Direct2D:
// a RenderTarget creates device resources, every resource is reference
// counted, and a resource is freed when its last reference is released.
//
// Resources are bound to the target that created them. Passing a brush
// created by one RenderTarget implementation to another fails with
// ErrForeignResource.
//
// Resources are not safe for concurrent use. Callers that share a target
// between goroutines must synchronize externally.
package retained

import (
	"errors"
	"image"
)

// Package errors.
var (
	// ErrForeignResource is returned when a resource created by a different
	// render target is passed to a target.
	ErrForeignResource = errors.New("retained: resource belongs to another target")

	// ErrTargetClosed is returned by operations on a closed target.
	ErrTargetClosed = errors.New("retained: target closed")

	// ErrInvalidSize is returned when a target is created with a
	// non-positive size.
	ErrInvalidSize = errors.New("retained: invalid target size")

	// ErrNoStops is returned when a stop collection is created from an
	// empty stop list.
	ErrNoStops = errors.New("retained: empty gradient stop list")
)

// ColorF is a straight-alpha color with float32 components in [0, 1].
type ColorF struct {
	R, G, B, A float32
}

// Point2F is a point in target coordinates.
type Point2F struct {
	X, Y float32
}

// RectF is an axis-aligned rectangle in target coordinates.
type RectF struct {
	Left, Top, Right, Bottom float32
}

// GradientStop is one color anchor of a gradient stop collection.
type GradientStop struct {
	Position float32
	Color    ColorF
}

// Gamma selects the color space gradient stops are interpolated in.
type Gamma int

const (
	// Gamma22 interpolates in gamma-encoded sRGB space.
	Gamma22 Gamma = iota
	// Gamma10 interpolates in linear light.
	Gamma10
)

// String returns the gamma name.
func (g Gamma) String() string {
	switch g {
	case Gamma22:
		return "gamma2.2"
	case Gamma10:
		return "gamma1.0"
	default:
		return "unknown"
	}
}

// ExtendMode defines how a gradient behaves outside its [0, 1] axis range.
type ExtendMode int

const (
	// ExtendClamp repeats the edge colors.
	ExtendClamp ExtendMode = iota
	// ExtendWrap repeats the gradient.
	ExtendWrap
	// ExtendMirror repeats the gradient, flipping every other period.
	ExtendMirror
)

// String returns the extend mode name.
func (m ExtendMode) String() string {
	switch m {
	case ExtendClamp:
		return "clamp"
	case ExtendWrap:
		return "wrap"
	case ExtendMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// LinearGradientBrushProperties is the gradient axis of a linear brush.
type LinearGradientBrushProperties struct {
	StartPoint Point2F
	EndPoint   Point2F
}

// Resource is a reference-counted native object.
type Resource interface {
	// AddRef adds a reference.
	AddRef()

	// Release drops a reference and returns the remaining count.
	// The resource is freed when the count reaches zero. Releasing a freed
	// resource is undefined.
	Release() uint32
}

// Brush is a paint source created by a RenderTarget.
type Brush interface {
	Resource
}

// SolidColorBrush paints a single color.
type SolidColorBrush interface {
	Brush

	// SetColor changes the brush color in place.
	SetColor(c ColorF)

	// Color returns the current brush color.
	Color() ColorF
}

// GradientStopCollection is an immutable list of gradient stops together
// with its interpolation settings.
type GradientStopCollection interface {
	Resource

	Stops() []GradientStop
	Gamma() Gamma
	ExtendMode() ExtendMode
}

// LinearGradientBrush paints a gradient along an axis.
type LinearGradientBrush interface {
	Brush

	StartPoint() Point2F
	EndPoint() Point2F
	GradientStopCollection() GradientStopCollection
}

// RenderTarget creates resources and draws with them.
type RenderTarget interface {
	CreateSolidColorBrush(c ColorF) (SolidColorBrush, error)
	CreateGradientStopCollection(stops []GradientStop, gamma Gamma, extend ExtendMode) (GradientStopCollection, error)
	CreateLinearGradientBrush(props LinearGradientBrushProperties, stops GradientStopCollection) (LinearGradientBrush, error)

	Clear(c ColorF) error
	FillRectangle(r RectF, b Brush) error

	// Image returns the current target contents.
	Image() image.Image

	// Close releases the target. Resources created by the target must not
	// be used for drawing afterwards.
	Close() error
}
