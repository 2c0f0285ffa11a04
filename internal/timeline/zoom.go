package timeline

import (
	"math"

	"github.com/AnatoleLucet/railway-timeline/internal/mathx"
)

// MinZoom returns the smallest zoom factor at which the whole range still
// covers the viewport. A range without positive duration has no minimum.
func MinZoom(s State, vp Viewport) float64 {
	base := RangeWidthAt(s, s.Range, 1)
	if base <= 0 {
		return 0
	}
	return vp.Width / base
}

// ClampZoom bounds zoom to [MinZoom, +Inf). There is no upper bound.
func ClampZoom(s State, zoom float64, vp Viewport) float64 {
	return mathx.Clamp(zoom, MinZoom(s, vp), math.Inf(1))
}

// ZoomBy returns the zoom factor and scroll offset after applying delta
// around focalOffset, a pixel position inside the viewport (usually the
// cursor).
//
// The response is exponential: exp(-delta) multiplies the current zoom, so
// equal deltas give equal zoom ratios at any level. Negative deltas zoom in.
// The instant under focalOffset stays under it unless the new scroll offset
// has to be clamped to the content edges.
func ZoomBy(s State, delta, focalOffset float64, vp Viewport) (zoom, scroll float64) {
	zoomDelta := math.Exp(-delta)
	zoom = ClampZoom(s, s.ZoomFactor*zoomDelta, vp)

	// how much the content grows (>1) or shrinks (<1)
	scaleFactor := MsWidthAt(s, zoom) / MsWidthAt(s, s.ZoomFactor)

	oldOffset := s.ScrollOffset + focalOffset
	newOffset := oldOffset*scaleFactor - focalOffset

	zoomed := s
	zoomed.ZoomFactor = zoom
	return zoom, ClampScroll(zoomed, newOffset, vp)
}
