package core

import "math"

// Interval is a numeric range bounding the valid ray parameter t.
type Interval struct {
	Start, End float64
}

// NewInterval creates an interval between start and end
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// NewIntervalFrom creates an interval from start to positive infinity
func NewIntervalFrom(start float64) Interval {
	return Interval{Start: start, End: math.Inf(1)}
}

// Surrounds reports whether value lies strictly inside the interval.
// Boundary values are excluded; this is the tie-break that keeps a ray
// from re-hitting the surface it just left.
func (iv Interval) Surrounds(value float64) bool {
	return iv.Start < value && value < iv.End
}

// Clamp limits value to the interval, boundaries included
func (iv Interval) Clamp(value float64) float64 {
	if value < iv.Start {
		return iv.Start
	}
	if value > iv.End {
		return iv.End
	}
	return value
}
