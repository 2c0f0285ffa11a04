package timeline

import "github.com/AnatoleLucet/railway-timeline/internal/timeutil"

// pixelSpan returns the content-space pixel interval of r.
func pixelSpan(s State, r timeutil.Range, msWidth float64) (start, end float64) {
	start = timeutil.Milliseconds(s.Range.Start, r.Start) * msWidth
	end = timeutil.Milliseconds(s.Range.Start, r.End) * msWidth
	return start, end
}

// viewSpan returns the content-space pixel interval covered by vp.
func viewSpan(s State, vp Viewport) (start, end float64) {
	return s.ScrollOffset, s.ScrollOffset + vp.Width
}

// IsVisible reports whether any part of r falls inside vp. Bounds are
// inclusive, so a range that only touches the viewport edge is visible.
//
// A nil viewport means the geometry is not known yet (nothing has been laid
// out); everything is assumed visible.
func IsVisible(s State, r timeutil.Range, vp *Viewport) bool {
	if vp == nil {
		return true
	}
	itemStart, itemEnd := pixelSpan(s, r, MsWidth(s))
	viewStart, viewEnd := viewSpan(s, *vp)
	return itemEnd >= viewStart && itemStart <= viewEnd
}

// VisibleRange returns the part of r that is on screen. It reports false
// when vp is nil or r is not visible at all.
//
// The result is a subset of r and of the viewport's time span, and it is
// itself visible. A reversed r is treated as the span between its bounds.
// Bounds that fall inside the viewport keep r's exact instants; bounds cut by
// the viewport edge are converted back from pixels.
func VisibleRange(s State, r timeutil.Range, vp *Viewport) (timeutil.Range, bool) {
	if vp == nil || !IsVisible(s, r, vp) {
		return timeutil.Range{}, false
	}
	if r.End.Before(r.Start) {
		r = timeutil.Range{Start: r.End, End: r.Start}
	}

	msWidth := MsWidth(s)
	itemStart, itemEnd := pixelSpan(s, r, msWidth)
	viewStart, viewEnd := viewSpan(s, *vp)

	out := r
	if viewStart > itemStart {
		out.Start = timeAtWidth(s, viewStart, msWidth)
		if out.Start.Before(r.Start) {
			out.Start = r.Start
		}
		if out.Start.After(r.End) {
			out.Start = r.End
		}
	}
	if viewEnd < itemEnd {
		out.End = timeAtWidth(s, viewEnd, msWidth)
		if out.End.After(r.End) {
			out.End = r.End
		}
	}
	if out.End.Before(out.Start) {
		out.End = out.Start
	}
	return out, true
}
