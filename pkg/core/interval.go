package core

import "math"

// Interval represents a closed range [Min, Max] of ray parameters or
// color-channel intensities.
type Interval struct {
	Min, Max float64
}

// Empty contains no values.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe contains every value.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains reports whether x lies in [Min, Max], boundaries included
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside (Min, Max).
// The exclusive test is what keeps intersections at t≈Min from
// self-intersecting at shadow boundaries.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp returns x limited to [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Size returns the width of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}
