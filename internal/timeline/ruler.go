package timeline

import "github.com/AnatoleLucet/railway-timeline/internal/timeutil"

// RulerSegment is one labelled unit of the ruler, already projected.
type RulerSegment struct {
	Range       timeutil.Range
	Unit        timeutil.Unit
	LabelFormat string
	Label       string
	Dividers    int
	CenterLabel bool
	Placement   Placement
}

// DividerOffsets returns the viewport-relative x positions of the segment's
// intra-unit gridlines, evenly spaced.
func (seg RulerSegment) DividerOffsets() []float64 {
	if seg.Dividers <= 0 {
		return nil
	}
	offsets := make([]float64, seg.Dividers)
	for i := range offsets {
		offsets[i] = seg.Placement.Offset + seg.Placement.Width*float64(i+1)/float64(seg.Dividers+1)
	}
	return offsets
}

// Ruler returns the ruler segments covering the visible part of the
// timeline, in chronological order. Segments are aligned to whole units so
// gridlines stay fixed while scrolling; the first and last segments may
// extend past the viewport edges.
//
// It returns nil when the viewport is unknown or nothing is visible.
func Ruler(s State, vp *Viewport) []RulerSegment {
	visible, ok := VisibleRange(s, s.Range, vp)
	if !ok {
		return nil
	}
	detail := SelectDetail(DayWidth(s))
	aligned := timeutil.Range{
		Start: timeutil.StartOf(visible.Start, detail.Unit),
		End:   timeutil.EndOf(visible.End, detail.Unit),
	}

	units := timeutil.Tessellate(detail.Unit, aligned)
	segments := make([]RulerSegment, 0, len(units))
	for _, r := range units {
		segments = append(segments, RulerSegment{
			Range:       r,
			Unit:        detail.Unit,
			LabelFormat: detail.LabelFormat,
			Label:       r.Start.Format(detail.LabelFormat),
			Dividers:    detail.Dividers,
			CenterLabel: detail.CenterLabel,
			Placement:   Project(s, r, vp),
		})
	}
	return segments
}
