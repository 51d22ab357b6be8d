package easing

import (
	"errors"
	"fmt"
)

// ErrUnknownEasing is returned for a preset whose kind is not recognised.
var ErrUnknownEasing = errors.New("easing: unknown kind")

// Kind names an easing strategy.
type Kind string

const (
	KindNone         Kind = "none"
	KindAccelerating Kind = "accelerating"
	KindFixedTime    Kind = "fixed-time"
	KindFixedSpeed   Kind = "fixed-speed"
)

// Preset is a serialisable description of an easing strategy, used for
// saved preferences and the settings overlay.
type Preset struct {
	Kind Kind `json:"kind"`
	// Value is the acceleration, tick count or speed, depending on Kind.
	Value float64 `json:"value,omitempty"`
	Curve string  `json:"curve,omitempty"`
}

// Func builds the strategy the preset describes.
func (p Preset) Func() (Func, error) {
	switch p.Kind {
	case KindNone, "":
		return None, nil
	case KindAccelerating:
		return Accelerating(p.Value), nil
	case KindFixedTime, KindFixedSpeed:
		curve, err := CurveByName(p.Curve)
		if err != nil {
			return nil, err
		}
		if p.Kind == KindFixedTime {
			return FixedTime(p.Value, curve), nil
		}
		return FixedSpeed(p.Value, curve), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, p.Kind)
	}
}

func (p Preset) String() string {
	switch p.Kind {
	case KindNone, "":
		return "none"
	case KindAccelerating:
		return fmt.Sprintf("accelerating %.2f", p.Value)
	case KindFixedTime:
		return fmt.Sprintf("fixed-time %g ticks %s", p.Value, p.curveName())
	case KindFixedSpeed:
		return fmt.Sprintf("fixed-speed %g/tick %s", p.Value, p.curveName())
	}
	return string(p.Kind)
}

func (p Preset) curveName() string {
	if p.Curve == "" {
		return "linear"
	}
	return p.Curve
}

// Presets is the selection offered by the settings overlay, in cycle order.
var Presets = []Preset{
	{Kind: KindNone},
	{Kind: KindAccelerating, Value: 0.1},
	{Kind: KindAccelerating, Value: 0.25},
	{Kind: KindFixedTime, Value: 20, Curve: "out-cubic"},
	{Kind: KindFixedTime, Value: 30, Curve: "in-out-quad"},
	{Kind: KindFixedSpeed, Value: 40, Curve: "linear"},
	{Kind: KindFixedSpeed, Value: 25, Curve: "out-expo"},
}
