package app

import (
	"math"
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
)

// selectedIndex returns the position of the selected deployment in located.
func (m *Model) selectedIndex() (int, bool) {
	if m.selectedID == "" {
		return 0, false
	}
	for i, loc := range m.located {
		if loc.Deployment.ID == m.selectedID {
			return i, true
		}
	}
	return 0, false
}

// selected returns the selected deployment and its service row.
func (m *Model) selected() (deploy.Located, bool) {
	i, ok := m.selectedIndex()
	if !ok {
		return deploy.Located{}, false
	}
	return m.located[i], true
}

// selectedService returns the service row of the selection, or 0.
func (m *Model) selectedService() int {
	if loc, ok := m.selected(); ok {
		return loc.Service
	}
	return 0
}

// selectDeployment makes id the selection and brings it on screen.
func (m *Model) selectDeployment(id string) {
	m.selectedID = id
	m.revealSelection()
	m.ensureRowVisible()
	m.refreshDetail()
}

// moveSelection steps through deployments in start order.
func (m *Model) moveSelection(delta int) {
	if len(m.located) == 0 {
		m.setStatus("No deployments")
		return
	}
	i, ok := m.selectedIndex()
	switch {
	case !ok && delta >= 0:
		i = 0
	case !ok:
		i = len(m.located) - 1
	default:
		i = clamp(i+delta, 0, len(m.located)-1)
	}
	m.selectDeployment(m.located[i].Deployment.ID)
}

// moveService moves the selection to the nearest deployment, in time, on the
// closest service row in direction delta that has any.
func (m *Model) moveService(delta int) {
	if len(m.rows) == 0 {
		return
	}
	anchor := m.selectionAnchor()
	for row := m.selectedService() + delta; row >= 0 && row < len(m.rows); row += delta {
		if d, ok := nearestDeployment(m.rows[row].items, anchor); ok {
			m.selectDeployment(d.ID)
			return
		}
	}
}

// selectionAnchor is the instant used to pick a deployment on another row:
// the middle of the selection, or the middle of the viewport.
func (m *Model) selectionAnchor() time.Time {
	if loc, ok := m.selected(); ok {
		r := loc.Deployment.TimeRange()
		return r.Start.Add(r.Duration() / 2)
	}
	if visible, ok := m.timeline.VisibleRange(); ok {
		return visible.Start.Add(visible.Duration() / 2)
	}
	return m.now()
}

func nearestDeployment(items []deploy.Deployment, at time.Time) (deploy.Deployment, bool) {
	var (
		best     deploy.Deployment
		bestDist = time.Duration(math.MaxInt64)
		found    bool
	)
	for _, d := range items {
		r := d.TimeRange()
		var dist time.Duration
		switch {
		case at.Before(r.Start):
			dist = r.Start.Sub(at)
		case at.After(r.End):
			dist = at.Sub(r.End)
		}
		if !found || dist < bestDist {
			best, bestDist, found = d, dist, true
		}
	}
	return best, found
}

// revealSelection scrolls horizontally when the selected deployment is not
// fully on screen.
func (m *Model) revealSelection() {
	loc, ok := m.selected()
	if !ok {
		return
	}
	vp, ok := m.timeline.Viewport()
	if !ok {
		return
	}
	r := loc.Deployment.TimeRange()
	p := m.timeline.Project(r)
	if p.Visible && p.Offset >= 0 && p.End() <= vp.Width {
		return
	}
	m.timeline.CenterOn(r.Start.Add(r.Duration() / 2))
}

// ensureRowVisible adjusts the vertical row offset so the selected service
// row is on screen.
func (m *Model) ensureRowVisible() {
	visible := m.calculateLayout().VisibleRows
	if visible <= 0 || len(m.rows) == 0 {
		m.rowOffset = 0
		return
	}
	row := m.selectedService()
	if row < m.rowOffset {
		m.rowOffset = row
	}
	if row >= m.rowOffset+visible {
		m.rowOffset = row - visible + 1
	}
	m.rowOffset = clamp(m.rowOffset, 0, max(0, len(m.rows)-visible))
}

// deploymentAt returns the deployment drawn at a screen cell.
func (m *Model) deploymentAt(x, y int) (deploy.Deployment, bool) {
	layout := m.calculateLayout()
	if y < layout.RowsTop || y >= layout.RowsTop+layout.RowsHeight {
		return deploy.Deployment{}, false
	}
	line := y - layout.RowsTop
	if line%RowHeight != 0 {
		return deploy.Deployment{}, false
	}
	row := m.rowOffset + line/RowHeight
	if row >= len(m.rows) {
		return deploy.Deployment{}, false
	}
	col := x - layout.TimelineLeft
	items := m.rows[row].items
	for i := len(items) - 1; i >= 0; i-- {
		p := m.timeline.Project(items[i].TimeRange())
		if !p.Visible {
			continue
		}
		left, right, ok := columnSpan(p.Offset, p.End(), layout.TimelineWidth)
		if ok && col >= left && col < right {
			return items[i], true
		}
	}
	return deploy.Deployment{}, false
}
