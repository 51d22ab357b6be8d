// Package input turns raw device state into scroll deltas. Each adapter is
// polled once per frame and posts on its MovedBy signal, so a host never
// delivers more than one delta per adapter per frame.
package input

import (
	"github.com/automoto/scrollctl/scroll"
)

// Action is a logical key the keyboard adapter reacts to.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionFast
)

// Device is the per-frame view of the input hardware.
type Device interface {
	// Wheel returns the wheel movement since the previous frame. A positive
	// dy means the wheel moved up.
	Wheel() (dx, dy float64)
	// Pointer returns the primary pointer position and whether it is held,
	// by a mouse button or a touch.
	Pointer() (x, y int, down bool)
	Pressed(a Action) bool
}

// Axis selects the pointer coordinate a drag follows.
type Axis int

const (
	AxisY Axis = iota
	AxisX
)

func (a Axis) pick(x, y int) int {
	if a == AxisX {
		return x
	}
	return y
}

func over(s scroll.Surface, x, y int) bool {
	if s == nil {
		return true
	}
	if !s.Interactive() {
		return false
	}
	r := s.Rect()
	if r.Empty() {
		return true
	}
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func interactive(s scroll.Surface) bool {
	return s == nil || s.Interactive()
}
