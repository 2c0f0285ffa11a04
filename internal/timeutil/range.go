// Package timeutil provides the time-range primitives used by the timeline:
// range arithmetic, calendar units, tessellation into unit-aligned segments
// and human-readable elapsed-time formatting.
package timeutil

import "time"

// Range is an immutable span between two instants. End may precede Start;
// every helper in this package tolerates that and reports a negative
// duration instead of failing.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a Range from its bounds.
func NewRange(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

// Duration returns End - Start. The result saturates for spans longer than
// time.Duration can represent.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Milliseconds returns the signed duration of r in (fractional) milliseconds.
func (r Range) Milliseconds() float64 {
	return float64(r.Duration()) / float64(time.Millisecond)
}

// Valid reports whether r has a strictly positive duration.
func (r Range) Valid() bool {
	return r.End.After(r.Start)
}

// Contains reports whether t lies within r, bounds included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether r and other share at least one instant.
func (r Range) Overlaps(other Range) bool {
	return !r.End.Before(other.Start) && !r.Start.After(other.End)
}

// Union returns the smallest range covering both r and other.
func (r Range) Union(other Range) Range {
	out := r
	if other.Start.Before(out.Start) {
		out.Start = other.Start
	}
	if other.End.After(out.End) {
		out.End = other.End
	}
	return out
}

// In returns r with both bounds expressed in loc. Calendar alignment and
// formatting follow the location of the bounds.
func (r Range) In(loc *time.Location) Range {
	return Range{Start: r.Start.In(loc), End: r.End.In(loc)}
}

// Equal reports whether both bounds denote the same instants.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// Milliseconds returns the signed duration between two instants in
// milliseconds; it is the unit the timeline scale works in.
func Milliseconds(from, to time.Time) float64 {
	return Range{Start: from, End: to}.Milliseconds()
}
