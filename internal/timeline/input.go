package timeline

// zoomDeltaScale converts ZoomSensitivity into a per-pixel zoom delta.
const zoomDeltaScale = 0.0001

// Drag is a pointer drag step. DeltaX is the horizontal pointer movement in
// pixels since the previous step.
type Drag struct {
	DeltaX float64
}

// Wheel is a wheel or trackpad step.
type Wheel struct {
	DeltaX float64
	DeltaY float64
	// ClientX is the pointer position in the same coordinate space as
	// Viewport.Left.
	ClientX float64
	// Ctrl is set for ctrl+wheel, which browsers also report for trackpad
	// pinches.
	Ctrl bool
	// Pinching is set while a pinch gesture is in progress.
	Pinching bool
}

// HandleDrag scrolls against the pointer movement, so content follows the
// pointer. It reports whether a transition was applied.
func (c *Controller) HandleDrag(d Drag) bool {
	if d.DeltaX == 0 {
		return false
	}
	return c.Scroll(-d.DeltaX)
}

// HandleWheel zooms around the pointer for ctrl+wheel (vertical delta) and
// scrolls for plain horizontal wheel movement. Pinches without the ctrl flag
// and zero deltas are ignored.
func (c *Controller) HandleWheel(w Wheel) bool {
	if w.Ctrl {
		if w.DeltaY == 0 {
			return false
		}
		vp, ok := c.Viewport()
		if !ok {
			return false
		}
		sensitivity := c.state.Config.ZoomSensitivity * zoomDeltaScale
		return c.Zoom(w.DeltaY*sensitivity, w.ClientX-vp.Left)
	}
	if w.Pinching || w.DeltaX == 0 {
		return false
	}
	return c.Scroll(w.DeltaX)
}
