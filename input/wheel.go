package input

import (
	"github.com/automoto/scrollctl/event"
	"github.com/automoto/scrollctl/scroll"
)

// Wheel posts WheelSpeed per frame in which the wheel moved over the
// surface. Only the direction of the wheel delta counts.
type Wheel struct {
	moved   *event.Signal[float64]
	device  Device
	surface scroll.Surface
	speed   float64
}

func NewWheel(device Device, surface scroll.Surface) *Wheel {
	return &Wheel{
		moved:   event.NewSignal[float64](),
		device:  device,
		surface: surface,
		speed:   scroll.DefaultOptions().WheelSpeed,
	}
}

func (w *Wheel) MovedBy() *event.Signal[float64] { return w.moved }

func (w *Wheel) ApplyOptions(o scroll.Options) { w.speed = o.WheelSpeed }

// Update polls the device. Wheel down scrolls forward.
func (w *Wheel) Update() {
	_, dy := w.device.Wheel()
	if dy == 0 {
		return
	}
	x, y, _ := w.device.Pointer()
	if !over(w.surface, x, y) {
		return
	}
	if dy > 0 {
		w.moved.Post(-w.speed)
	} else {
		w.moved.Post(w.speed)
	}
}
