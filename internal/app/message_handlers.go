package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// refreshTickMsg is emitted by the periodic refresh timer.
type refreshTickMsg struct{}

// handleSpinnerTick keeps the spinner animating while a load is running.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleWindowResize updates layout dimensions after terminal resize. The
// initial viewport is applied on the first resize that follows a load.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout()
	m.applyPendingFocus()
	m.refreshDetail()
	return m, nil
}

// scheduleRefreshTick queues the next periodic reload.
func (m *Model) scheduleRefreshTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// handleRefreshTick reloads the source and schedules the next tick. A tick
// that lands while a load is running is dropped.
func (m *Model) handleRefreshTick(_ refreshTickMsg) (tea.Model, tea.Cmd) {
	if m.refreshInterval <= 0 {
		return m, nil
	}
	return m, tea.Batch(m.startLoad(), m.scheduleRefreshTick())
}
