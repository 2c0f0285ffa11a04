package timeline

import (
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

// MsWidth returns how many pixels represent one millisecond at the current
// zoom factor.
func MsWidth(s State) float64 {
	return MsWidthAt(s, s.ZoomFactor)
}

// MsWidthAt returns how many pixels represent one millisecond at zoom.
func MsWidthAt(s State, zoom float64) float64 {
	return (s.Config.PixelsPerDay / msPerDay) * zoom
}

// DayWidth returns the width of one day in pixels at the current zoom factor.
func DayWidth(s State) float64 {
	return DayWidthAt(s, s.ZoomFactor)
}

// DayWidthAt returns the width of one day in pixels at zoom.
func DayWidthAt(s State, zoom float64) float64 {
	return s.Config.PixelsPerDay * zoom
}

// RangeWidth returns the width of r in pixels at the current zoom factor.
// A reversed range has a negative width.
func RangeWidth(s State, r timeutil.Range) float64 {
	return RangeWidthAt(s, r, s.ZoomFactor)
}

// RangeWidthAt returns the width of r in pixels at zoom.
func RangeWidthAt(s State, r timeutil.Range, zoom float64) float64 {
	return r.Milliseconds() * MsWidthAt(s, zoom)
}

// ContentWidth returns the width of the whole timeline at the current zoom.
func ContentWidth(s State) float64 {
	return RangeWidth(s, s.Range)
}

// OffsetOf returns the content-space pixel position of t, measured from
// s.Range.Start and ignoring the scroll offset.
func OffsetOf(s State, t time.Time) float64 {
	return timeutil.Milliseconds(s.Range.Start, t) * MsWidth(s)
}

// TimeAt returns the instant at content-space pixel px. It is the inverse of
// OffsetOf, rounded to the nearest nanosecond.
func TimeAt(s State, px float64) time.Time {
	return timeAtWidth(s, px, MsWidth(s))
}

func timeAtWidth(s State, px, msWidth float64) time.Time {
	ms := px / msWidth
	return s.Range.Start.Add(durationFromMs(ms))
}

func durationFromMs(ms float64) time.Duration {
	ns := ms * float64(time.Millisecond)
	if ns >= 0 {
		return time.Duration(ns + 0.5)
	}
	return time.Duration(ns - 0.5)
}
