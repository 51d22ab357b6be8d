package scroll

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// Bounds is the closed range every position and destination is clamped to.
type Bounds struct {
	Min, Max float64
}

// Clamp limits v to [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	return math.Min(math.Max(v, b.Min), b.Max)
}

// Ordered returns b with Min and Max swapped if they are reversed.
func (b Bounds) Ordered() Bounds {
	if b.Min > b.Max {
		return Bounds{Min: b.Max, Max: b.Min}
	}
	return b
}

// uniqueSnapPositions returns the sorted, deduplicated snap positions
// strictly inside b, together with both endpoints of b.
func uniqueSnapPositions(snaps []float64, b Bounds) []float64 {
	inside := lo.Filter(snaps, func(p float64, _ int) bool {
		return p > b.Min && p < b.Max
	})
	unique := lo.Uniq(append(inside, b.Min, b.Max))
	sort.Float64s(unique)
	return unique
}

// nextSnapPosition picks the discrete-mode target: the first unique position
// above pos when moving forward, otherwise the one before the first position
// at or above pos. Past either end it stays on the last candidate.
func nextSnapPosition(unique []float64, pos, delta float64) (float64, bool) {
	if len(unique) == 0 {
		return 0, false
	}

	if delta > 0 {
		_, idx, ok := lo.FindIndexOf(unique, func(p float64) bool { return p > pos })
		if !ok {
			idx = len(unique) - 1
		}
		return unique[idx], true
	}

	_, idx, ok := lo.FindIndexOf(unique, func(p float64) bool { return p >= pos })
	if !ok {
		idx = len(unique) - 1
	}
	if idx > 0 {
		idx--
	}
	return unique[idx], true
}

// snapToPoint returns the first snap position, in list order, that lies
// ahead of dest in the direction of travel and closer than threshold.
// Without a match, or without a direction, dest is returned unchanged.
func snapToPoint(snaps []float64, dest, direction, threshold float64) float64 {
	p, ok := lo.Find(snaps, func(p float64) bool {
		d := (p - dest) * direction
		return d > 0 && d < threshold
	})
	if !ok {
		return dest
	}
	return p
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
