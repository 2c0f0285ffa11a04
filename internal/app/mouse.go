package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnatoleLucet/railway-timeline/internal/timeline"
)

// handleMouse routes mouse input. Dragging the timeline pans it, the wheel
// scrolls it, and ctrl+wheel zooms around the pointer. A click without
// movement selects the deployment under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		m.handleWheel(msg)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inTimeline(msg.X, msg.Y) {
			return m, nil
		}
		m.drag = dragState{active: true, lastX: msg.X}
	case tea.MouseActionMotion:
		if !m.drag.active {
			return m, nil
		}
		dx := msg.X - m.drag.lastX
		if dx == 0 {
			return m, nil
		}
		m.drag.lastX = msg.X
		m.drag.moved = true
		m.timeline.HandleDrag(timeline.Drag{DeltaX: float64(dx)})
	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		moved := m.drag.moved
		m.drag = dragState{}
		if moved {
			return m, nil
		}
		if d, ok := m.deploymentAt(msg.X, msg.Y); ok {
			m.selectDeployment(d.ID)
		}
	}
	return m, nil
}

// handleWheel converts a terminal wheel notch into a timeline wheel event.
// Terminals only report vertical notches from most mice, so a plain vertical
// notch pans horizontally; horizontal notches pan as well. Deltas follow the
// browser convention: wheel up is negative, and ctrl+wheel up zooms in.
func (m *Model) handleWheel(msg tea.MouseMsg) {
	if m.inDetail(msg.Y) {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.detail.LineUp(1)
		case tea.MouseButtonWheelDown:
			m.detail.LineDown(1)
		}
		return
	}
	if !m.inTimeline(msg.X, msg.Y) {
		return
	}

	wheel := timeline.Wheel{ClientX: float64(msg.X), Ctrl: msg.Ctrl}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Ctrl {
			wheel.DeltaY = -WheelZoomDelta
		} else {
			wheel.DeltaX = -WheelScrollDelta
		}
	case tea.MouseButtonWheelDown:
		if msg.Ctrl {
			wheel.DeltaY = WheelZoomDelta
		} else {
			wheel.DeltaX = WheelScrollDelta
		}
	case tea.MouseButtonWheelLeft:
		wheel.DeltaX = -WheelScrollDelta
	case tea.MouseButtonWheelRight:
		wheel.DeltaX = WheelScrollDelta
	}
	m.timeline.HandleWheel(wheel)
}
