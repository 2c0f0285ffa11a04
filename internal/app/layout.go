// layout.go centralizes the terminal layout calculations.
//
// From top to bottom the screen holds a one-line header, the timeline (the
// ruler followed by one row per service, with the service names in a sidebar
// on the left), an optional deployment detail pane, and the footer. The
// timeline's viewport geometry is derived from the same numbers and handed to
// the timeline controller through measure.
package app

import "github.com/AnatoleLucet/railway-timeline/internal/timeline"

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	SidebarWidth   int // width of the service name column, separator included
	TimelineLeft   int // first column of the timeline area
	TimelineWidth  int // columns available to the timeline
	TimelineTop    int // first row of the ruler
	RowsTop        int // first row of the service rows
	RowsHeight     int // rows available to service rows
	VisibleRows    int // service rows that fit in RowsHeight
	ContentHeight  int // header + timeline + detail pane
	DetailHeight   int // outer height of the detail pane, 0 when hidden
	ViewportWidth  int // usable width inside the detail pane
	ViewportHeight int // usable height inside the detail pane
	FooterHeight   int
}

// calculateLayout computes all UI dimensions based on terminal size.
//
// The sidebar is the smaller of DefaultSidebarWidth and
// width / SidebarWidthDivider. The detail pane is dropped when showing it
// would leave fewer than MinTimelineRows lines for service rows.
func (m *Model) calculateLayout() LayoutDimensions {
	footer := m.footerHeightForWidth(m.width)
	contentHeight := max(0, m.height-footer)

	sidebar := min(DefaultSidebarWidth, m.width/SidebarWidthDivider)
	timelineWidth := max(0, m.width-sidebar)

	detailHeight := 0
	if m.showDetail && contentHeight-HeaderRows-RulerRows-DetailPaneHeight >= MinTimelineRows {
		detailHeight = DetailPaneHeight
	}
	rowsHeight := max(0, contentHeight-HeaderRows-RulerRows-detailHeight)

	viewportWidth := max(0, m.width-detailPane.GetHorizontalFrameSize())
	viewportHeight := max(0, detailHeight-detailPane.GetVerticalFrameSize())

	return LayoutDimensions{
		SidebarWidth:   sidebar,
		TimelineLeft:   sidebar,
		TimelineWidth:  timelineWidth,
		TimelineTop:    HeaderRows,
		RowsTop:        HeaderRows + RulerRows,
		RowsHeight:     rowsHeight,
		VisibleRows:    rowsHeight / RowHeight,
		ContentHeight:  contentHeight,
		DetailHeight:   detailHeight,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		FooterHeight:   footer,
	}
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// measure reports the timeline viewport. It is the controller's Measurer:
// before the first WindowSizeMsg there is no layout yet.
func (m *Model) measure() (timeline.Viewport, bool) {
	if m.width <= 0 || m.height <= 0 {
		return timeline.Viewport{}, false
	}
	layout := m.calculateLayout()
	if layout.TimelineWidth <= 0 {
		return timeline.Viewport{}, false
	}
	return timeline.Viewport{
		Width:  float64(layout.TimelineWidth),
		Height: float64(RulerRows + layout.RowsHeight),
		Top:    float64(layout.TimelineTop),
		Left:   float64(layout.TimelineLeft),
	}, true
}

// applyLayout resizes the detail viewport and re-clamps the timeline after
// the terminal or the pane arrangement changed.
func (m *Model) applyLayout() {
	layout := m.calculateLayout()
	m.detail.Width = layout.ViewportWidth
	m.detail.Height = layout.ViewportHeight
	m.timeline.Refit()
	m.ensureRowVisible()
}

// inTimeline reports whether a screen cell is inside the timeline area.
func (m *Model) inTimeline(x, y int) bool {
	layout := m.calculateLayout()
	return x >= layout.TimelineLeft && x < layout.TimelineLeft+layout.TimelineWidth &&
		y >= layout.TimelineTop && y < layout.RowsTop+layout.RowsHeight
}

// inDetail reports whether a screen row is inside the detail pane.
func (m *Model) inDetail(y int) bool {
	layout := m.calculateLayout()
	top := HeaderRows + RulerRows + layout.RowsHeight
	return layout.DetailHeight > 0 && y >= top && y < top+layout.DetailHeight
}
