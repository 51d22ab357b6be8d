package easing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/tanema/gween/ease"
)

// ErrUnknownCurve is returned when a curve name has no registered curve.
var ErrUnknownCurve = errors.New("easing: unknown curve")

// Curve shapes interpolation progress: it maps t in [0,1] to a ratio that
// starts at 0 and ends at 1.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// FromTween adapts a gween ease function to a Curve.
func FromTween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var curves = map[string]Curve{
	"linear":       Linear,
	"in-quad":      FromTween(ease.InQuad),
	"out-quad":     FromTween(ease.OutQuad),
	"in-out-quad":  FromTween(ease.InOutQuad),
	"in-cubic":     FromTween(ease.InCubic),
	"out-cubic":    FromTween(ease.OutCubic),
	"in-out-cubic": FromTween(ease.InOutCubic),
	"out-expo":     FromTween(ease.OutExpo),
	"in-out-sine":  FromTween(ease.InOutSine),
	"out-back":     FromTween(ease.OutBack),
	"out-bounce":   FromTween(ease.OutBounce),
	"out-elastic":  FromTween(ease.OutElastic),
}

// CurveByName looks up a named curve. The empty name is linear.
func CurveByName(name string) (Curve, error) {
	if name == "" {
		return Linear, nil
	}
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}

// CurveNames lists the registered curve names in sorted order.
func CurveNames() []string {
	names := lo.Keys(curves)
	sort.Strings(names)
	return names
}
