package timeline

import (
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

// Measurer reports the current container geometry. It returns false until
// the container has been laid out. Geometry is read on every call and never
// cached, since resizes can happen between any two events.
type Measurer interface {
	Measure() (Viewport, bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func() (Viewport, bool)

// Measure implements Measurer.
func (f MeasureFunc) Measure() (Viewport, bool) { return f() }

// Controller owns the State of one timeline and is the only place it
// changes. It is not safe for concurrent use; it belongs to the goroutine
// that delivers input events.
type Controller struct {
	state    State
	measurer Measurer
}

// NewController creates a controller browsing r.
func NewController(r timeutil.Range, cfg Config, m Measurer) *Controller {
	return &Controller{
		state:    NewState(r, cfg),
		measurer: m,
	}
}

// State returns a snapshot of the committed state.
func (c *Controller) State() State {
	return c.state
}

// Apply commits t(current) as the new state and returns it.
func (c *Controller) Apply(t Transform) State {
	c.state = t(c.state)
	return c.state
}

// Viewport measures the container. The boolean is false before layout.
func (c *Controller) Viewport() (Viewport, bool) {
	if c.measurer == nil {
		return Viewport{}, false
	}
	return c.measurer.Measure()
}

func (c *Controller) viewportRef() *Viewport {
	vp, ok := c.Viewport()
	if !ok {
		return nil
	}
	return &vp
}

// Scroll moves the view by delta pixels. It reports false, leaving the
// state untouched, when the viewport has not been laid out.
func (c *Controller) Scroll(delta float64) bool {
	vp, ok := c.Viewport()
	if !ok {
		return false
	}
	c.Apply(func(s State) State {
		s.ScrollOffset = ScrollBy(s, delta, vp)
		return s
	})
	return true
}

// Zoom zooms by delta around focalOffset, a pixel position relative to the
// viewport's left edge.
func (c *Controller) Zoom(delta, focalOffset float64) bool {
	vp, ok := c.Viewport()
	if !ok {
		return false
	}
	c.Apply(func(s State) State {
		s.ZoomFactor, s.ScrollOffset = ZoomBy(s, delta, focalOffset, vp)
		return s
	})
	return true
}

// JumpTo zooms so that r fills the viewport and scrolls to r.Start. Ranges
// wider than the timeline are clamped to the fit-to-viewport zoom.
func (c *Controller) JumpTo(r timeutil.Range) bool {
	vp, ok := c.Viewport()
	if !ok {
		return false
	}
	c.Apply(func(s State) State {
		width := RangeWidthAt(s, r, 1)
		if width > 0 {
			s.ZoomFactor = vp.Width / width
		}
		s.ZoomFactor = ClampZoom(s, s.ZoomFactor, vp)
		s.ScrollOffset = ClampScroll(s, OffsetOf(s, r.Start), vp)
		return s
	})
	return true
}

// CenterOn scrolls so that t sits in the middle of the viewport.
func (c *Controller) CenterOn(t time.Time) bool {
	vp, ok := c.Viewport()
	if !ok {
		return false
	}
	c.Apply(func(s State) State {
		s.ScrollOffset = ClampScroll(s, OffsetOf(s, t)-vp.Width/2, vp)
		return s
	})
	return true
}

// SetRange replaces the browsed range. Zoom and scroll are kept and, when
// the viewport is known, re-clamped against the new range.
func (c *Controller) SetRange(r timeutil.Range) {
	c.Apply(func(s State) State {
		s.Range = r
		return s
	})
	c.Refit()
}

// SetConfig replaces the configuration; zero fields fall back to defaults.
func (c *Controller) SetConfig(cfg Config) {
	c.Apply(func(s State) State {
		s.Config = cfg.WithDefaults()
		return s
	})
	c.Refit()
}

// Refit restores the zoom and scroll invariants for the current viewport.
// Call it after the container is resized.
func (c *Controller) Refit() bool {
	vp, ok := c.Viewport()
	if !ok {
		return false
	}
	c.Apply(Reclamp(vp))
	return true
}

// Project places r against the current state and viewport.
func (c *Controller) Project(r timeutil.Range) Placement {
	return Project(c.state, r, c.viewportRef())
}

// VisibleRange returns the on-screen part of the whole timeline.
func (c *Controller) VisibleRange() (timeutil.Range, bool) {
	return VisibleRange(c.state, c.state.Range, c.viewportRef())
}

// Ruler returns the ruler segments for the current state and viewport.
func (c *Controller) Ruler() []RulerSegment {
	return Ruler(c.state, c.viewportRef())
}

// Detail returns the level of detail for the current zoom.
func (c *Controller) Detail() Detail {
	return SelectDetail(DayWidth(c.state))
}
