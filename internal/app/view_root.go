package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the full UI (header, timeline, detail pane and status footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	sections := []string{padBlock(m.renderHeader(m.width), m.width, HeaderRows)}

	timelineHeight := RulerRows + layout.RowsHeight
	if m.showHelp {
		sections = append(sections, m.renderHelp(m.width, timelineHeight))
	} else {
		sections = append(sections, m.renderTimeline(layout))
	}
	if layout.DetailHeight > 0 {
		pane := detailPane.
			Width(max(0, m.width-detailPane.GetHorizontalBorderSize())).
			Height(layout.ViewportHeight).
			Render(m.detail.View())
		sections = append(sections, padBlock(pane, m.width, layout.DetailHeight))
	}

	content := padBlock(strings.Join(sections, "\n"), m.width, layout.ContentHeight)
	view := content + "\n" + m.renderStatus(m.width, layout.FooterHeight)
	return padBlock(view, m.width, m.height)
}

// renderHeader draws the project and environment names on the left and the
// visible time span on the right.
func (m *Model) renderHeader(width int) string {
	title := "railway-timeline"
	if m.loaded {
		title = m.snapshot.Project.Name
		if title == "" {
			title = m.snapshot.Project.ID
		}
		if env := m.snapshot.Environment.Name; env != "" {
			title += " › " + env
		}
	}
	if m.loading {
		title = m.spinner.View() + " " + title
	}
	left := titleStyle.Render(title)

	right := ""
	if visible, ok := m.timeline.VisibleRange(); ok {
		layout := m.timeline.Detail().LabelFormat
		if m.timeline.Detail().CenterLabel {
			layout = "Jan 2 15:04"
		} else if !strings.Contains(layout, "06") {
			layout = "Jan 2, 2006"
		}
		right = mutedStyle.Render(fmt.Sprintf("%s → %s  %s",
			visible.Start.In(m.loc).Format(layout), visible.End.In(m.loc).Format(layout), m.zoomLabel()))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// zoomLabel describes the zoom level and the ruler unit, e.g. "150% · day".
func (m *Model) zoomLabel() string {
	return fmt.Sprintf("%.0f%% · %s", m.timeline.State().ZoomFactor*100, m.timeline.Detail().Unit)
}
