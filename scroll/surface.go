package scroll

import (
	"image"

	"github.com/automoto/scrollctl/event"
)

// Surface is the rectangular area a controller scrolls. The controller only
// toggles its interactivity; input adapters use Rect and Interactive to
// decide whether pointer input belongs to it.
type Surface interface {
	Rect() image.Rectangle
	Interactive() bool
	SetInteractive(bool)
}

// Area is a plain Surface backed by a rectangle.
type Area struct {
	Box     image.Rectangle
	Enabled bool
}

func (a *Area) Rect() image.Rectangle {
	return a.Box
}

func (a *Area) Interactive() bool {
	return a.Enabled
}

func (a *Area) SetInteractive(on bool) {
	a.Enabled = on
}

func (a *Area) Contains(x, y int) bool {
	return image.Pt(x, y).In(a.Box)
}

// Adapter is an input source that reports relative movement.
type Adapter interface {
	MovedBy() *event.Signal[float64]
}

// OptionsReceiver is implemented by adapters that read speeds from the
// controller options. They receive the merged options on construction and
// after every SetOptions.
type OptionsReceiver interface {
	ApplyOptions(Options)
}
