package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleBrowseKey dispatches a key press through the keybinding table.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.actionForKey(msg.String())
	if m.showHelp && action != actionHelp && action != actionQuit {
		if msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	switch action {
	case actionQuit:
		return m, tea.Quit
	case actionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case actionScrollLeft:
		m.scrollTimeline(-ScrollStep)
	case actionScrollRight:
		m.scrollTimeline(ScrollStep)
	case actionPageLeft:
		m.scrollPage(-1)
	case actionPageRight:
		m.scrollPage(1)
	case actionZoomIn:
		m.zoomAtCenter(-ZoomStep)
	case actionZoomOut:
		m.zoomAtCenter(ZoomStep)
	case actionFit:
		if m.timeline.JumpTo(m.timeline.State().Range) {
			m.setStatus("Showing the whole timeline")
		}
	case actionNow:
		m.timeline.CenterOn(m.now())
	case actionStart:
		m.timeline.CenterOn(m.timeline.State().Range.Start)
	case actionEnd:
		m.timeline.CenterOn(m.timeline.State().Range.End)
	case actionNextDeployment:
		m.moveSelection(1)
	case actionPrevDeployment:
		m.moveSelection(-1)
	case actionServiceUp:
		m.moveService(-1)
	case actionServiceDown:
		m.moveService(1)
	case actionFocusDeployment:
		m.focusSelection()
	case actionCopyID:
		m.copySelectedDeploymentID()
	case actionDetailToggle:
		m.showDetail = !m.showDetail
		m.applyLayout()
		m.refreshDetail()
	case actionDetailScrollUp:
		m.detail.HalfViewUp()
	case actionDetailScrollDown:
		m.detail.HalfViewDown()
	case actionRefresh:
		if cmd := m.startLoad(); cmd != nil {
			m.setStatus("Reloading " + m.source.Describe())
			return m, cmd
		}
		m.setStatus("Already loading")
	}
	return m, nil
}

func (m *Model) scrollTimeline(delta float64) {
	if !m.timeline.Scroll(delta) {
		return
	}
	appLog.Debug("scroll", "delta", delta, "offset", m.timeline.State().ScrollOffset)
}

func (m *Model) scrollPage(direction float64) {
	vp, ok := m.timeline.Viewport()
	if !ok {
		return
	}
	m.scrollTimeline(direction * vp.Width * PageScrollRatio)
}

// zoomAtCenter zooms around the middle of the viewport so the centered
// instant stays put. Negative deltas zoom in.
func (m *Model) zoomAtCenter(delta float64) {
	vp, ok := m.timeline.Viewport()
	if !ok {
		return
	}
	if m.timeline.Zoom(delta, vp.Width/2) {
		m.setStatus(fmt.Sprintf("Zoom %s", m.zoomLabel()))
	}
}

// focusSelection fits the selected deployment into the viewport.
func (m *Model) focusSelection() {
	loc, ok := m.selected()
	if !ok {
		m.setStatus("No deployment selected")
		return
	}
	m.timeline.JumpTo(loc.Deployment.TimeRange())
}
