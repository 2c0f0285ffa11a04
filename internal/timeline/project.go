package timeline

import "github.com/AnatoleLucet/railway-timeline/internal/timeutil"

// Placement is where an item lands on screen.
type Placement struct {
	// Offset is the left edge relative to the viewport's left edge.
	Offset float64
	// Width is the item's width in pixels.
	Width float64
	// Visible reports whether any part of the item is inside the viewport.
	Visible bool
}

// End returns the right edge relative to the viewport's left edge.
func (p Placement) End() float64 {
	return p.Offset + p.Width
}

// Item is anything placed on the timeline. The engine only needs its range.
type Item interface {
	TimeRange() timeutil.Range
}

// Project computes the on-screen placement of r.
func Project(s State, r timeutil.Range, vp *Viewport) Placement {
	return Placement{
		Offset:  OffsetOf(s, r.Start) - s.ScrollOffset,
		Width:   RangeWidth(s, r),
		Visible: IsVisible(s, r, vp),
	}
}

// ProjectItem is Project for an Item.
func ProjectItem(s State, item Item, vp *Viewport) Placement {
	return Project(s, item.TimeRange(), vp)
}

// ValidItemRange reports whether r can be drawn as an item. Renderers skip
// ranges with a non-positive duration; the engine itself accepts them.
func ValidItemRange(r timeutil.Range) bool {
	return r.Valid()
}
