package input

import (
	"github.com/automoto/scrollctl/event"
	"github.com/automoto/scrollctl/scroll"
)

// Drag follows a held pointer. A press inside the surface starts a drag;
// releasing the pointer or leaving the surface ends it. Each frame the
// pointer moved posts (previous - current) * DragSpeed, so dragging up
// scrolls forward.
type Drag struct {
	moved   *event.Signal[float64]
	device  Device
	surface scroll.Surface
	axis    Axis
	speed   float64

	wasDown  bool
	dragging bool
	last     int
}

func NewDrag(device Device, surface scroll.Surface, axis Axis) *Drag {
	return &Drag{
		moved:   event.NewSignal[float64](),
		device:  device,
		surface: surface,
		axis:    axis,
		speed:   scroll.DefaultOptions().DragSpeed,
	}
}

func (d *Drag) MovedBy() *event.Signal[float64] { return d.moved }

func (d *Drag) ApplyOptions(o scroll.Options) { d.speed = o.DragSpeed }

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool { return d.dragging }

func (d *Drag) Update() {
	x, y, down := d.device.Pointer()
	pressed := down && !d.wasDown
	d.wasDown = down

	inside := over(d.surface, x, y)
	v := d.axis.pick(x, y)

	switch {
	case !down || (d.dragging && !inside):
		d.dragging = false
	case pressed && inside:
		d.dragging = true
		d.last = v
	case d.dragging && v != d.last:
		delta := float64(d.last-v) * d.speed
		d.last = v
		d.moved.Post(delta)
	}
}
