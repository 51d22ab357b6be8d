package scroll

import (
	"fmt"
	"time"

	"github.com/automoto/scrollctl/easing"
)

// Mode selects how input deltas become destination changes.
type Mode int

const (
	// ModeContinuous shifts the destination by the scaled delta.
	ModeContinuous Mode = iota
	// ModeDiscrete jumps to the next unique snap position in the direction
	// of the delta.
	ModeDiscrete
	// ModeSnapped is accepted by the options but has no dispatch behaviour;
	// moving in this mode fails with ErrUnknownMode.
	ModeSnapped
)

var modeNames = map[Mode]string{
	ModeContinuous: "continuous",
	ModeDiscrete:   "discrete",
	ModeSnapped:    "snapped",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name back to its Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options tunes a Controller and its input adapters.
type Options struct {
	Mode   Mode
	Easing easing.Func

	Acceleration  float64 // Used by accelerating easing built with a zero rate
	Tolerance     float64 // Below this distance the position lands on the snap destination
	SpeedFactor   float64 // Scales continuous deltas and easing durations
	SnapThreshold float64 // Max distance ahead of the destination a snap point is adopted from

	DragSpeed    float64 // Destination units per pixel dragged
	WheelSpeed   float64 // Destination units per wheel notch
	KeySpeed     float64 // Destination units per key press
	KeySpeedFast float64 // Destination units per key press with the fast modifier

	WaitTime time.Duration // Discrete mode throttle window
}

// DefaultOptions returns the default configuration. Each call returns a new
// value; there is no shared default to mutate.
func DefaultOptions() Options {
	return Options{
		Mode:          ModeContinuous,
		Easing:        easing.None,
		Acceleration:  0.1,
		Tolerance:     0.1,
		SpeedFactor:   1,
		SnapThreshold: 0,
		DragSpeed:     5,
		WheelSpeed:    75,
		KeySpeed:      10,
		KeySpeedFast:  100,
		WaitTime:      200 * time.Millisecond,
	}
}

// Params returns the easing parameters carried by o.
func (o Options) Params() easing.Params {
	return easing.Params{SpeedFactor: o.SpeedFactor, Acceleration: o.Acceleration}
}

// Option changes one field of an Options value. Fields no Option touches
// keep their previous value.
type Option func(*Options)

// Apply returns a copy of o with opts applied in order.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithEasing sets the easing strategy. A nil strategy is ignored.
func WithEasing(fn easing.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Easing = fn
		}
	}
}

func WithAcceleration(v float64) Option {
	return func(o *Options) { o.Acceleration = v }
}

func WithTolerance(v float64) Option {
	return func(o *Options) { o.Tolerance = v }
}

func WithSpeedFactor(v float64) Option {
	return func(o *Options) { o.SpeedFactor = v }
}

func WithSnapThreshold(v float64) Option {
	return func(o *Options) { o.SnapThreshold = v }
}

func WithDragSpeed(v float64) Option {
	return func(o *Options) { o.DragSpeed = v }
}

func WithWheelSpeed(v float64) Option {
	return func(o *Options) { o.WheelSpeed = v }
}

func WithKeySpeed(v float64) Option {
	return func(o *Options) { o.KeySpeed = v }
}

func WithKeySpeedFast(v float64) Option {
	return func(o *Options) { o.KeySpeedFast = v }
}

func WithWaitTime(d time.Duration) Option {
	return func(o *Options) { o.WaitTime = d }
}

// WithOptions replaces every field with the ones in v, except a nil Easing.
func WithOptions(v Options) Option {
	return func(o *Options) {
		fn := o.Easing
		*o = v
		if o.Easing == nil {
			o.Easing = fn
		}
	}
}
