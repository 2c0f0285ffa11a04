package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// DefaultSidebarWidth is the widest the service name column gets.
	DefaultSidebarWidth = 24

	// SidebarWidthDivider caps the sidebar at terminal_width / this value
	// on narrow terminals.
	SidebarWidthDivider = 4

	// HeaderRows is the title line above the timeline.
	HeaderRows = 1

	// RulerRows holds the ruler labels and the tick line.
	RulerRows = 2

	// RowHeight is the number of lines per service row: the deployment bars
	// and a separator.
	RowHeight = 2

	// DetailPaneHeight is the outer height of the deployment detail pane.
	DetailPaneHeight = 10

	// MinTimelineRows is the least room kept for service rows before the
	// detail pane is hidden.
	MinTimelineRows = 4

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area. The app targets two rows on typical terminal widths.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Navigation constants, in terminal columns.
const (
	// ScrollStep is how far the arrow keys move the timeline.
	ScrollStep = 100

	// PageScrollRatio is the share of the viewport a page scroll moves.
	PageScrollRatio = 0.9

	// ZoomStep is the zoom exponent applied per zoom key press.
	ZoomStep = 0.25

	// WheelScrollDelta is the horizontal distance of one wheel notch.
	WheelScrollDelta = 8

	// WheelZoomDelta is the vertical wheel delta of one ctrl+wheel notch.
	// It is scaled by the configured zoom sensitivity.
	WheelZoomDelta = 20
)

// Rendering constants control render timing and optimization
const (
	// RenderWidthBucket is the granularity for width-based render caching
	// Widths are rounded to nearest multiple of this value
	RenderWidthBucket = 20
)

// Data loading constants.
const (
	// LoadTimeout bounds one snapshot load, including every API request.
	LoadTimeout = time.Minute

	// DefaultFileWatchInterval is the poll interval for dataset file changes.
	DefaultFileWatchInterval = 2 * time.Second
)
