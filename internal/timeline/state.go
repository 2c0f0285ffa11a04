package timeline

import "github.com/AnatoleLucet/railway-timeline/internal/timeutil"

// msPerDay is the number of milliseconds in a nominal day.
const msPerDay = 1000 * 60 * 60 * 24

const (
	// DefaultPixelsPerDay is the width of one day at zoom factor 1.
	DefaultPixelsPerDay = 100
	// DefaultZoomSensitivity scales raw wheel deltas into zoom deltas.
	DefaultZoomSensitivity = 100
)

// Config holds the tunables supplied when a timeline is created.
type Config struct {
	// PixelsPerDay is how many pixels represent one day at zoom factor 1.
	PixelsPerDay float64
	// ZoomSensitivity scales ctrl+wheel and pinch deltas.
	ZoomSensitivity float64
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() Config {
	return Config{
		PixelsPerDay:    DefaultPixelsPerDay,
		ZoomSensitivity: DefaultZoomSensitivity,
	}
}

// WithDefaults replaces non-positive fields with their defaults.
func (c Config) WithDefaults() Config {
	if c.PixelsPerDay <= 0 {
		c.PixelsPerDay = DefaultPixelsPerDay
	}
	if c.ZoomSensitivity <= 0 {
		c.ZoomSensitivity = DefaultZoomSensitivity
	}
	return c
}

// Viewport is a snapshot of the on-screen container geometry in pixels.
type Viewport struct {
	Width  float64
	Height float64
	Top    float64
	Left   float64
}

// State is the complete view state of one timeline.
type State struct {
	// Range is the logical extent being browsed. It is replaced wholesale,
	// never edited in place.
	Range timeutil.Range

	// ZoomFactor multiplies Config.PixelsPerDay. 1 is the baseline density.
	ZoomFactor float64

	// ScrollOffset is the pixel distance from Range.Start to the left edge
	// of the viewport.
	ScrollOffset float64

	Config Config
}

// NewState returns the initial state for r: baseline zoom, scrolled to the
// start of the range.
func NewState(r timeutil.Range, cfg Config) State {
	return State{
		Range:        r,
		ZoomFactor:   1,
		ScrollOffset: 0,
		Config:       cfg.WithDefaults(),
	}
}

// Transform is a pure function from one state to the next.
type Transform func(State) State

// Reclamp returns a transform that restores the zoom and scroll invariants
// for vp: zoom no lower than the fit-to-viewport minimum, scroll within the
// content.
func Reclamp(vp Viewport) Transform {
	return func(s State) State {
		s.ZoomFactor = ClampZoom(s, s.ZoomFactor, vp)
		s.ScrollOffset = ClampScroll(s, s.ScrollOffset, vp)
		return s
	}
}
