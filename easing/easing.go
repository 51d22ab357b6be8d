package easing

import "math"

// Stepper advances a position by one tick toward the destination it was
// built for. A stepper may keep private per-animation counters.
type Stepper func(pos float64) float64

// Params is the part of the scroll options an easing strategy may read.
type Params struct {
	SpeedFactor  float64
	Acceleration float64
}

// Func builds a fresh Stepper for one animation from prev to dest. It is
// called once per destination change and must not keep state between calls.
type Func func(prev, dest float64, p Params) Stepper

// None jumps straight to the destination on the first tick.
func None(_, dest float64, _ Params) Stepper {
	return func(float64) float64 { return dest }
}

// Accelerating approaches the destination exponentially: every tick covers
// a fixed share of the remaining distance. A non-positive a uses the
// acceleration from Params. The formula never lands exactly; the controller
// tolerance finishes the animation.
func Accelerating(a float64) Func {
	return func(_, dest float64, p Params) Stepper {
		rate := a
		if rate <= 0 {
			rate = p.Acceleration
		}
		factor := rate * speedFactor(p)
		return func(pos float64) float64 {
			return pos + (dest-pos)*factor
		}
	}
}

// FixedTime interpolates from prev to dest over ticks ticks, shortened by
// the speed factor. A nil curve interpolates linearly.
func FixedTime(ticks float64, curve Curve) Func {
	return func(prev, dest float64, p Params) Stepper {
		return interpolate(prev, dest, ticks/speedFactor(p), curve)
	}
}

// FixedSpeed interpolates from prev to dest covering at most speed units
// per tick, shortened by the speed factor. A non-positive speed arrives on
// the first tick.
func FixedSpeed(speed float64, curve Curve) Func {
	return func(prev, dest float64, p Params) Stepper {
		var ticks float64
		if speed > 0 {
			ticks = math.Ceil(math.Abs(prev-dest) / speed)
		}
		return interpolate(prev, dest, ticks/speedFactor(p), curve)
	}
}

func interpolate(prev, dest, budget float64, curve Curve) Stepper {
	if curve == nil {
		curve = Linear
	}
	tick := 0.0
	return func(float64) float64 {
		if tick >= budget {
			return dest
		}
		tick++
		ratio := math.Min(tick/budget, 1)
		if ratio == 1 {
			return dest
		}
		return prev + curve(ratio)*(dest-prev)
	}
}

func speedFactor(p Params) float64 {
	if p.SpeedFactor == 0 {
		return 1
	}
	return p.SpeedFactor
}
