package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, statusStyle.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs the footer segments into at most rowLimit rows. The
// second result is false when something had to be truncated.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	if m.showHelp {
		return []string{"Help", m.primaryActionKey(actionHelp, "?") + "/Esc close", m.primaryActionKey(actionQuit, "q") + " quit"}
	}
	return []string{
		m.primaryActionKey(actionScrollLeft, "←") + "/" + m.primaryActionKey(actionScrollRight, "→") + " scroll",
		m.primaryActionKey(actionZoomIn, "+") + "/" + m.primaryActionKey(actionZoomOut, "-") + " zoom",
		m.primaryActionKey(actionFit, "F") + " fit",
		m.primaryActionKey(actionNow, "T") + " now",
		m.primaryActionKey(actionNextDeployment, "Tab") + " next",
		m.primaryActionKey(actionServiceUp, "↑") + "/" + m.primaryActionKey(actionServiceDown, "↓") + " service",
		m.primaryActionKey(actionDetailToggle, "D") + " details",
		m.primaryActionKey(actionRefresh, "R") + " reload",
		m.primaryActionKey(actionHelp, "?") + " help",
		m.primaryActionKey(actionQuit, "Q") + " quit",
	}
}

func (m *Model) statusContextSegments() []string {
	parts := make([]string, 0, 3)
	if loc, ok := m.selected(); ok {
		parts = append(parts, loc.Deployment.ID)
	}
	if m.loaded {
		if metrics := m.deploymentMetricsSummary(); metrics != "" {
			parts = append(parts, metrics)
		}
	}
	if m.timeline != nil {
		parts = append(parts, m.zoomLabel())
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	status := strings.TrimSpace(m.status)
	if status != "" && m.statusIsError {
		return errorStatus.Render(status)
	}
	return status
}

// renderHelp draws the keyboard reference in place of the timeline.
func (m *Model) renderHelp(width, height int) string {
	lines := []string{titleStyle.Render("Keyboard Shortcuts"), ""}

	keyWidth := 0
	keys := make([]string, len(actionDescriptions))
	for i, desc := range actionDescriptions {
		keys[i] = m.allActionKeys(desc.action, "unbound")
		keyWidth = max(keyWidth, lipgloss.Width(keys[i]))
	}
	for i, desc := range actionDescriptions {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", keyWidth, keys[i], desc.text))
	}
	lines = append(lines,
		"",
		"Mouse",
		"  drag              pan the timeline",
		"  wheel             pan the timeline",
		"  ctrl+wheel        zoom around the pointer",
		"  click             select a deployment",
		"",
		"Press "+m.primaryActionKey(actionHelp, "?")+" to return.",
	)

	visible := min(height, len(lines))
	out := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		out = append(out, truncate(lines[i], width))
	}
	return padBlock(strings.Join(out, "\n"), width, height)
}
