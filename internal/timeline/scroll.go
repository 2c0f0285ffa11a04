package timeline

import "github.com/AnatoleLucet/railway-timeline/internal/mathx"

// MaxScroll returns the largest scroll offset that keeps the viewport within
// the content at the current zoom factor.
func MaxScroll(s State, vp Viewport) float64 {
	return max(0, ContentWidth(s)-vp.Width)
}

// ClampScroll bounds offset to [0, MaxScroll].
func ClampScroll(s State, offset float64, vp Viewport) float64 {
	return mathx.Clamp(offset, 0, MaxScroll(s, vp))
}

// ScrollBy returns the scroll offset after moving the view by delta pixels.
// Positive deltas move toward later instants.
func ScrollBy(s State, delta float64, vp Viewport) float64 {
	return ClampScroll(s, s.ScrollOffset+delta, vp)
}
