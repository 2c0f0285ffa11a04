package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/railway"
	"github.com/AnatoleLucet/railway-timeline/internal/timeline"
)

// snapshotLoadedMsg delivers a finished load. seq discards results that were
// superseded by a newer load.
type snapshotLoadedMsg struct {
	seq      int
	snapshot deploy.Snapshot
	err      error
}

// startLoad begins loading the source unless a load is already running.
func (m *Model) startLoad() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	m.loadSeq++
	return loadSnapshotCmd(m.source, m.loadSeq)
}

// loadSnapshotCmd runs one load on a Bubble Tea goroutine with LoadTimeout.
func loadSnapshotCmd(source deploy.Source, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		snap, err := source.Load(ctx)
		return snapshotLoadedMsg{seq: seq, snapshot: snap, err: err}
	}
}

// handleSnapshotLoaded installs a new snapshot. The first snapshot also sets
// the initial viewport; later ones keep the user's zoom and scroll.
func (m *Model) handleSnapshotLoaded(msg snapshotLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.setStatusError(loadErrorStatus(msg.err), msg.err, "source", m.source.Describe())
		return m, nil
	}

	first := !m.loaded
	m.applySnapshot(msg.snapshot)
	m.loaded = true

	if first {
		m.pendingFocus = true
		m.applyPendingFocus()
	}
	m.setStatus(m.loadedStatus(first))
	return m, nil
}

func loadErrorStatus(err error) string {
	var selection *railway.SelectionError
	switch {
	case errors.Is(err, railway.ErrUnauthorized):
		return "Railway rejected the API token"
	case errors.As(err, &selection):
		return selection.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "Timed out loading deployments"
	default:
		return "Failed to load deployments"
	}
}

func (m *Model) loadedStatus(first bool) string {
	verb := "Refreshed"
	if first {
		verb = "Loaded"
	}
	status := fmt.Sprintf("%s %s", verb, m.source.Describe())
	if m.skipped > 0 {
		status += fmt.Sprintf(" (%d skipped)", m.skipped)
	}
	return status
}

// applySnapshot rebuilds the rows and re-targets the timeline range.
// Deployments whose range is empty or reversed are logged and skipped.
func (m *Model) applySnapshot(snap deploy.Snapshot) {
	m.snapshot = snap
	m.rows = m.rows[:0]
	m.skipped = 0
	valid := map[string]bool{}

	for _, svc := range snap.Project.Services {
		row := serviceRow{service: svc}
		for _, d := range svc.Deployments {
			r, ok := d.Range()
			if !ok {
				appLog.Debug("deployment has no events yet", "service", svc.Name, "deployment", d.ID)
				continue
			}
			if !timeline.ValidItemRange(r) {
				appLog.Warn("skip deployment with invalid range",
					"service", svc.Name, "deployment", d.ID, "start", r.Start, "end", r.End)
				m.skipped++
				continue
			}
			row.items = append(row.items, d)
			valid[d.ID] = true
		}
		m.rows = append(m.rows, row)
	}

	m.located = m.located[:0]
	for _, loc := range snap.Timeline() {
		if valid[loc.Deployment.ID] {
			m.located = append(m.located, loc)
		}
	}

	if _, ok := m.selectedIndex(); !ok {
		m.selectedID = ""
	}
	if m.selectedID == "" && len(m.located) > 0 {
		m.selectedID = m.located[len(m.located)-1].Deployment.ID
	}

	m.timeline.SetRange(snap.Extent(m.now()).In(m.loc))
	m.ensureRowVisible()
	m.refreshDetail()
}

// applyPendingFocus jumps to the initial viewport once both data and layout
// are available.
func (m *Model) applyPendingFocus() {
	if !m.pendingFocus || !m.loaded {
		return
	}
	if m.timeline.JumpTo(m.snapshot.Focus(m.now()).In(m.loc)) {
		m.pendingFocus = false
	}
}
