// Package timeline is the viewport engine behind the deployment timeline.
//
// It maps a logical time range onto a horizontally scrollable, zoomable
// pixel space. The engine is a set of pure functions over a State snapshot:
//
//   - scale: durations and instants to pixel lengths and back;
//   - cull: visibility tests and visible sub-ranges for a viewport;
//   - zoom and scroll: the next zoom factor and scroll offset for an input
//     delta, clamped so content never shrinks below the viewport and the
//     view never scrolls past the content;
//   - detail and ruler: the calendar unit and gridline density to draw at
//     the current zoom level.
//
// A Controller owns one State and commits transitions through Apply, so
// every change is a pure State -> State function that can be replayed in
// tests. Renderers consume Project and Ruler output; they never touch the
// State directly.
//
// Out-of-range inputs are clamped silently. Callers learn the outcome by
// reading the committed State, not from errors.
package timeline
