package timeline

import (
	"testing"

	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

func TestIsVisible(t *testing.T) {
	s := oneDayState(t)
	vp := &Viewport{Width: 100, Height: 100}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "fully inside", start: "2023-01-01T06:00:00Z", end: "2023-01-01T18:00:00Z", want: true},
		{name: "overlapping left", start: "2022-12-31T18:00:00Z", end: "2023-01-01T06:00:00Z", want: true},
		{name: "overlapping right", start: "2023-01-01T18:00:00Z", end: "2023-01-02T06:00:00Z", want: true},
		{name: "outside left", start: "2022-12-31T00:00:00Z", end: "2022-12-31T23:59:59Z", want: false},
		{name: "outside right", start: "2023-01-02T00:00:01Z", end: "2023-01-03T00:00:00Z", want: false},
		{name: "touching left edge", start: "2022-12-31T00:00:00Z", end: "2023-01-01T00:00:00Z", want: true},
		{name: "touching right edge", start: "2023-01-02T00:00:00Z", end: "2023-01-03T00:00:00Z", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(s, mustRange(t, tt.start, tt.end), vp); got != tt.want {
				t.Fatalf("IsVisible: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsVisibleWithoutViewportFailsOpen(t *testing.T) {
	s := oneDayState(t)
	far := mustRange(t, "1999-01-01T00:00:00Z", "1999-01-02T00:00:00Z")
	if !IsVisible(s, far, nil) {
		t.Fatal("expected unknown geometry to count as visible")
	}
}

func TestIsVisibleTouchingScrolledViewStart(t *testing.T) {
	s := oneDayState(t)
	s.ScrollOffset = 50
	vp := &Viewport{Width: 30}

	// itemEnd lands exactly on viewStart (50px = 12:00).
	r := mustRange(t, "2023-01-01T06:00:00Z", "2023-01-01T12:00:00Z")
	if !IsVisible(s, r, vp) {
		t.Fatal("expected a range ending at the view start to be visible")
	}
}

func TestVisibleRange(t *testing.T) {
	s := oneDayState(t)
	vp := &Viewport{Width: 100, Height: 100}

	got, ok := VisibleRange(s, s.Range, vp)
	if !ok || !got.Equal(s.Range) {
		t.Fatalf("full range: got %v (%v), want %v", got, ok, s.Range)
	}

	s.ScrollOffset = 50
	got, ok = VisibleRange(s, s.Range, vp)
	want := mustRange(t, "2023-01-01T12:00:00Z", "2023-01-02T00:00:00Z")
	if !ok || !got.Equal(want) {
		t.Fatalf("scrolled 50px: got %v (%v), want %v", got, ok, want)
	}

	s.ScrollOffset = 0
	s.Config.PixelsPerDay = 200
	got, ok = VisibleRange(s, s.Range, vp)
	want = mustRange(t, "2023-01-01T00:00:00Z", "2023-01-01T12:00:00Z")
	if !ok || !got.Equal(want) {
		t.Fatalf("200px/day: got %v (%v), want %v", got, ok, want)
	}
}

func TestVisibleRangeWithoutViewport(t *testing.T) {
	s := oneDayState(t)
	if _, ok := VisibleRange(s, s.Range, nil); ok {
		t.Fatal("expected no visible range without a viewport")
	}
}

func TestVisibleRangeOffscreen(t *testing.T) {
	s := oneDayState(t)
	r := mustRange(t, "2023-01-05T00:00:00Z", "2023-01-06T00:00:00Z")
	if _, ok := VisibleRange(s, r, &Viewport{Width: 100}); ok {
		t.Fatal("expected offscreen range to have no visible part")
	}
}

func TestVisibleRangeIsVisibleSubset(t *testing.T) {
	s := NewState(mustRange(t, "2023-01-01T00:00:00Z", "2023-01-11T00:00:00Z"), Config{})
	s.ZoomFactor = 2.5
	s.ScrollOffset = 612.25
	vp := &Viewport{Width: 333}

	viewStart := TimeAt(s, s.ScrollOffset)
	viewEnd := TimeAt(s, s.ScrollOffset+vp.Width)

	ranges := []timeutil.Range{
		s.Range,
		mustRange(t, "2023-01-02T05:00:00Z", "2023-01-04T01:00:00Z"),
		mustRange(t, "2023-01-03T10:00:00Z", "2023-01-03T11:00:00Z"),
		mustRange(t, "2023-01-03T00:00:00Z", "2023-01-09T00:00:00Z"),
	}
	for _, r := range ranges {
		got, ok := VisibleRange(s, r, vp)
		if !ok {
			t.Fatalf("expected %v to be visible", r)
		}
		if got.Start.Before(r.Start) || got.End.After(r.End) {
			t.Fatalf("%v is not a subset of %v", got, r)
		}
		if got.Start.Before(viewStart.Add(-1)) || got.End.After(viewEnd.Add(1)) {
			t.Fatalf("%v is not within the view [%v, %v]", got, viewStart, viewEnd)
		}
		if !IsVisible(s, got, vp) {
			t.Fatalf("visible range %v should itself be visible", got)
		}
	}
}

func TestVisibleRangeOfReversedRangeStaysWithinBounds(t *testing.T) {
	s := oneDayState(t)
	vp := &Viewport{Width: 100}
	forward := mustRange(t, "2023-01-01T06:00:00Z", "2023-01-01T12:00:00Z")
	reversed := timeutil.Range{Start: forward.End, End: forward.Start}

	got, ok := VisibleRange(s, reversed, vp)
	if !ok {
		t.Fatal("expected reversed range inside the view to be visible")
	}
	if !got.Equal(forward) {
		t.Fatalf("expected %v, got %v", forward, got)
	}
	if got.Start.Before(forward.Start) || got.End.After(forward.End) {
		t.Fatalf("%v is outside the bounds of %v", got, reversed)
	}
}

func TestVisibleRangeTouchingRightEdge(t *testing.T) {
	s := oneDayState(t)
	vp := &Viewport{Width: 50}
	// starts exactly at viewEnd (12:00 at 100px/day).
	r := mustRange(t, "2023-01-01T12:00:00Z", "2023-01-01T20:00:00Z")

	got, ok := VisibleRange(s, r, vp)
	if !ok {
		t.Fatal("expected touching range to be visible")
	}
	if !got.Start.Equal(r.Start) {
		t.Fatalf("expected start %v, got %v", r.Start, got.Start)
	}
	if !IsVisible(s, got, vp) {
		t.Fatal("expected clipped range to remain visible")
	}
}
