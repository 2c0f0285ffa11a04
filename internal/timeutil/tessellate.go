package timeutil

import "time"

// Tessellate splits r into contiguous, non-overlapping segments of one unit
// each, stepping from r.Start. Segment i covers
// [Start + i units, Start + (i+1) units - 1ms]; both ends are clipped to r, so
// the first and last segments may be shorter than a full unit.
//
// The segment count is Diff(r.Start, r.End, u) + 1. A range whose end precedes
// its start yields nil.
func Tessellate(u Unit, r Range) []Range {
	if r.End.Before(r.Start) {
		return nil
	}
	count := Diff(r.Start, r.End, u) + 1
	segments := make([]Range, 0, count)
	for i := 0; i < count; i++ {
		start := Add(r.Start, u, i)
		end := Add(r.Start, u, i+1).Add(-time.Millisecond)
		if start.Before(r.Start) {
			start = r.Start
		}
		if end.After(r.End) {
			end = r.End
		}
		segments = append(segments, Range{Start: start, End: end})
	}
	return segments
}
