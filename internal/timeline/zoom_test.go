package timeline

import (
	"math"
	"testing"
)

// monthState browses 30 days at 100px/day: 3000px of content at zoom 1.
func monthState(t *testing.T) State {
	t.Helper()
	return NewState(mustRange(t, "2023-01-01T00:00:00Z", "2023-01-31T00:00:00Z"), Config{})
}

func TestMinZoomFitsRangeToViewport(t *testing.T) {
	s := monthState(t)
	vp := Viewport{Width: 500}

	assertApprox(t, "MinZoom", MinZoom(s, vp), 500.0/3000.0)
	s.ZoomFactor = MinZoom(s, vp)
	assertApprox(t, "content at min zoom", ContentWidth(s), vp.Width)
}

func TestMinZoomForEmptyRange(t *testing.T) {
	s := monthState(t)
	s.Range.End = s.Range.Start
	if got := MinZoom(s, Viewport{Width: 500}); got != 0 {
		t.Fatalf("expected no minimum for an empty range, got %v", got)
	}
}

func TestZoomByPreservesFocalPoint(t *testing.T) {
	s := monthState(t)
	s.ScrollOffset = 1000
	vp := Viewport{Width: 500}
	focal := 200.0

	under := TimeAt(s, s.ScrollOffset+focal)

	zoom, scroll := ZoomBy(s, -0.5, focal, vp)
	assertApprox(t, "zoom", zoom, math.Exp(0.5))

	next := s
	next.ZoomFactor = zoom
	next.ScrollOffset = scroll
	assertApprox(t, "focal pixel", OffsetOf(next, under)-next.ScrollOffset, focal)
	assertApprox(t, "scroll", scroll, (s.ScrollOffset+focal)*math.Exp(0.5)-focal)
}

func TestZoomByIsMultiplicative(t *testing.T) {
	s := monthState(t)
	vp := Viewport{Width: 500}

	first, _ := ZoomBy(s, -0.3, 0, vp)
	s.ZoomFactor = 4
	second, _ := ZoomBy(s, -0.3, 0, vp)

	assertApprox(t, "ratio", second/4, first/1)
}

func TestZoomByZeroDeltaIsNoop(t *testing.T) {
	s := monthState(t)
	s.ZoomFactor = 2
	s.ScrollOffset = 750
	zoom, scroll := ZoomBy(s, 0, 123, Viewport{Width: 500})

	assertApprox(t, "zoom", zoom, 2)
	assertApprox(t, "scroll", scroll, 750)
}

func TestZoomByClampsToMinimumZoom(t *testing.T) {
	s := monthState(t)
	s.ScrollOffset = 1200
	vp := Viewport{Width: 500}

	zoom, scroll := ZoomBy(s, 10, 250, vp)
	assertApprox(t, "zoom", zoom, 500.0/3000.0)
	assertApprox(t, "scroll", scroll, 0)
}

func TestZoomByHasNoUpperBound(t *testing.T) {
	s := monthState(t)
	zoom, _ := ZoomBy(s, -20, 0, Viewport{Width: 500})
	assertApprox(t, "zoom", zoom, math.Exp(20))
}

func TestZoomByClampsScrollAtLeftEdge(t *testing.T) {
	s := monthState(t)
	zoom, scroll := ZoomBy(s, 1, 0, Viewport{Width: 500})

	assertApprox(t, "zoom", zoom, math.Exp(-1))
	assertApprox(t, "scroll", scroll, 0)
}

func TestZoomByClampsScrollAtRightEdge(t *testing.T) {
	s := monthState(t)
	vp := Viewport{Width: 500}
	s.ScrollOffset = MaxScroll(s, vp)

	zoom, scroll := ZoomBy(s, 0.5, 0, vp)
	next := s
	next.ZoomFactor = zoom
	if scroll != MaxScroll(next, vp) {
		t.Fatalf("expected scroll clamped to %v, got %v", MaxScroll(next, vp), scroll)
	}
}
