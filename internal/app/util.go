package app

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/AnatoleLucet/railway-timeline/internal/mathx"
)

// truncate fits a string to the given terminal width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// padBlock normalizes content to a fixed width and height so old UI text is cleared.
func padBlock(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		line = truncate(line, width)
		visible := lipgloss.Width(line)
		if visible < width {
			line += strings.Repeat(" ", width-visible)
		}
		lines[i] = line
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// clamp bounds a value between minVal and maxVal.
func clamp(value, minVal, maxVal int) int {
	return mathx.Clamp(value, minVal, maxVal)
}

// columnSpan converts a pixel span into whole terminal columns clipped to
// [0, width). Spans narrower than a column still get one.
func columnSpan(offset, end float64, width int) (left, right int, ok bool) {
	if width <= 0 || end < 0 || offset >= float64(width) {
		return 0, 0, false
	}
	left = int(math.Floor(mathx.Clamp(offset, 0, float64(width))))
	right = int(math.Ceil(mathx.Clamp(end, 0, float64(width))))
	if right <= left {
		right = left + 1
	}
	if right > width {
		right = width
		left = min(left, width-1)
	}
	return left, right, true
}

// renderWidthBucket buckets widths so the cache is more reusable.
func renderWidthBucket(width int) int {
	if width <= 0 {
		return 80
	}
	if width < RenderWidthBucket {
		return width
	}
	return (width / RenderWidthBucket) * RenderWidthBucket
}
