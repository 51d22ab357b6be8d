package input

import (
	"github.com/automoto/scrollctl/event"
	"github.com/automoto/scrollctl/scroll"
)

// Repeat configures key repeat in frames. A zero Delay disables repeat.
type Repeat struct {
	Delay    int
	Interval int
}

// Keyboard posts +KeySpeed for the forward action and -KeySpeed for the
// backward action, or KeySpeedFast while the fast modifier is held. It
// fires on the press and then repeats while the key stays down.
type Keyboard struct {
	moved   *event.Signal[float64]
	device  Device
	surface scroll.Surface
	repeat  Repeat

	speed, fast float64
	held        [2]int
}

func NewKeyboard(device Device, surface scroll.Surface, repeat Repeat) *Keyboard {
	o := scroll.DefaultOptions()
	return &Keyboard{
		moved:   event.NewSignal[float64](),
		device:  device,
		surface: surface,
		repeat:  repeat,
		speed:   o.KeySpeed,
		fast:    o.KeySpeedFast,
	}
}

func (k *Keyboard) MovedBy() *event.Signal[float64] { return k.moved }

func (k *Keyboard) ApplyOptions(o scroll.Options) {
	k.speed = o.KeySpeed
	k.fast = o.KeySpeedFast
}

func (k *Keyboard) Update() {
	if !interactive(k.surface) {
		k.held = [2]int{}
		return
	}

	speed := k.speed
	if k.device.Pressed(ActionFast) {
		speed = k.fast
	}

	if k.fire(0, ActionForward) {
		k.moved.Post(speed)
	}
	if k.fire(1, ActionBackward) {
		k.moved.Post(-speed)
	}
}

// fire advances the hold counter of a and reports whether it emits this
// frame.
func (k *Keyboard) fire(slot int, a Action) bool {
	if !k.device.Pressed(a) {
		k.held[slot] = 0
		return false
	}
	k.held[slot]++
	n := k.held[slot]
	if n == 1 {
		return true
	}
	if k.repeat.Delay <= 0 || n <= k.repeat.Delay {
		return false
	}
	interval := max(k.repeat.Interval, 1)
	return (n-k.repeat.Delay-1)%interval == 0
}
