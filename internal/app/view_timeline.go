package app

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/timeline"
)

// cell is one terminal column of a timeline line. A zero rune marks the
// right half of a double-width rune.
type cell struct {
	r     rune
	style *lipgloss.Style
}

// canvas is a single line of the timeline area. Cells are written by column
// and rendered as runs of equal style.
type canvas []cell

func newCanvas(width int) canvas {
	c := make(canvas, max(0, width))
	for i := range c {
		c[i].r = ' '
	}
	return c
}

// set writes one single-width rune. Writing over either half of a wide rune
// blanks the other half.
func (c canvas) set(col int, r rune, style *lipgloss.Style) {
	if col < 0 || col >= len(c) {
		return
	}
	if c[col].r == 0 && col > 0 {
		c[col-1].r = ' '
	}
	if col+1 < len(c) && c[col+1].r == 0 {
		c[col+1].r = ' '
	}
	c[col] = cell{r: r, style: style}
}

// setIfEmpty writes only over blank unstyled cells.
func (c canvas) setIfEmpty(col int, r rune, style *lipgloss.Style) {
	if col < 0 || col >= len(c) || c[col].style != nil || c[col].r != ' ' {
		return
	}
	c[col] = cell{r: r, style: style}
}

// text writes s from col on and returns the column after it. Runes that do
// not fit whole are dropped.
func (c canvas) text(col int, s string, style *lipgloss.Style) int {
	for _, r := range s {
		w := rw.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > len(c) {
			break
		}
		if w == 2 {
			c.set(col+1, ' ', style)
			c.set(col, r, style)
			c[col+1].r = 0
		} else {
			c.set(col, r, style)
		}
		col += w
	}
	return col
}

func (c canvas) String() string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(c); i++ {
		if i < len(c) && c[i].style == c[start].style {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, cl := range c[start:i] {
			if cl.r != 0 {
				run = append(run, cl.r)
			}
		}
		if c[start].style != nil {
			b.WriteString(c[start].style.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		start = i
	}
	return b.String()
}

// renderTimeline draws the ruler and the visible service rows, each with the
// service name in the sidebar.
func (m *Model) renderTimeline(layout LayoutDimensions) string {
	height := RulerRows + layout.RowsHeight
	if layout.TimelineWidth <= 0 || height <= 0 {
		return padBlock("", m.width, height)
	}

	segments := m.timeline.Ruler()
	boundaries := segmentColumns(segments, layout.TimelineWidth)
	nowCol, nowVisible := m.nowColumn(layout.TimelineWidth)

	lines := make([]string, 0, height)
	labels, ticks := m.renderRuler(segments, layout.TimelineWidth)
	if nowVisible {
		ticks.set(nowCol, '▼', &nowMarkerStyle)
	}
	lines = append(lines,
		m.sidebarCell("", layout.SidebarWidth)+labels.String(),
		m.sidebarCell("", layout.SidebarWidth)+ticks.String())

	if m.loaded && len(m.rows) == 0 {
		lines = append(lines, m.sidebarCell("", layout.SidebarWidth)+mutedStyle.Render(" No services in this environment"))
	} else if !m.loaded {
		lines = append(lines, m.sidebarCell("", layout.SidebarWidth)+mutedStyle.Render(" "+m.spinner.View()+" "+m.status))
	}

	for line := 0; len(lines) < height; line++ {
		row := m.rowOffset + line/RowHeight
		name := ""
		c := newCanvas(layout.TimelineWidth)
		if row < len(m.rows) && line%RowHeight == 0 {
			name = m.serviceLabel(m.rows[row].service)
			m.drawRow(c, m.rows[row].items)
		}
		for _, col := range boundaries {
			c.setIfEmpty(col, '│', &separatorStyle)
		}
		if nowVisible {
			c.setIfEmpty(nowCol, '│', &nowMarkerStyle)
		}
		lines = append(lines, m.sidebarCell(name, layout.SidebarWidth)+c.String())
	}
	return padBlock(strings.Join(lines, "\n"), m.width, height)
}

// renderRuler returns the label line and the tick line of the ruler.
func (m *Model) renderRuler(segments []timeline.RulerSegment, width int) (labels, ticks canvas) {
	labels = newCanvas(width)
	ticks = newCanvas(width)
	nextFree := 0
	for _, seg := range segments {
		start := int(math.Round(seg.Placement.Offset))
		ticks.set(start, '┬', &rulerTickStyle)
		for _, offset := range seg.DividerOffsets() {
			ticks.setIfEmpty(int(math.Round(offset)), '·', &rulerTickStyle)
		}

		label := seg.Label
		col := start + 1
		if seg.CenterLabel {
			col = start - lipgloss.Width(label)/2
		}
		if col < 0 {
			// Keep the label of a segment that started off screen readable
			// while the rest of it is still visible.
			if int(math.Round(seg.Placement.End())) <= lipgloss.Width(label)+1 {
				continue
			}
			col = 0
		}
		if col < nextFree || col >= width {
			continue
		}
		nextFree = labels.text(col, label, &rulerStyle) + 1
	}
	return labels, ticks
}

// segmentColumns returns the on-screen columns of segment boundaries.
func segmentColumns(segments []timeline.RulerSegment, width int) []int {
	cols := make([]int, 0, len(segments))
	for _, seg := range segments {
		col := int(math.Round(seg.Placement.Offset))
		if col >= 0 && col < width {
			cols = append(cols, col)
		}
	}
	return cols
}

// nowColumn returns the column of the current time when it is on screen.
func (m *Model) nowColumn(width int) (int, bool) {
	state := m.timeline.State()
	if !state.Range.Contains(m.now()) {
		return 0, false
	}
	col := int(math.Floor(timeline.OffsetOf(state, m.now()) - state.ScrollOffset))
	return col, col >= 0 && col < width
}

// drawRow draws the deployments of one service. Later deployments are drawn
// over earlier ones, matching the hit test in deploymentAt.
func (m *Model) drawRow(c canvas, items []deploy.Deployment) {
	for _, d := range items {
		p := m.timeline.Project(d.TimeRange())
		if !p.Visible {
			continue
		}
		left, right, ok := columnSpan(p.Offset, p.End(), len(c))
		if !ok {
			continue
		}

		style := d.Status.Style()
		bar := itemStyle(style)
		badge := badgeStyle(style)
		if d.ID == m.selectedID {
			bar = bar.Reverse(true)
			badge = badge.Reverse(true)
		}
		for col := left; col < right; col++ {
			c.set(col, ' ', &bar)
		}

		col := left
		if style.HasBadge() && right-left > lipgloss.Width(style.Label)+2 {
			col = c.text(col, " "+style.Label+" ", &badge)
		}
		if right-col > 2 {
			c.text(col+1, truncate(d.Label(m.loc), right-col-2), &bar)
		}
	}
}

func (m *Model) serviceLabel(svc deploy.Service) string {
	if svc.Deleted() {
		return svc.Name + " (deleted)"
	}
	return svc.Name
}

func (m *Model) sidebarCell(name string, width int) string {
	if width <= 0 {
		return ""
	}
	text := " " + truncate(name, max(0, width-3))
	pad := max(0, width-1-lipgloss.Width(text))
	text += strings.Repeat(" ", pad)
	return sidebarStyle.Render(text) + separatorStyle.Render("│")
}
