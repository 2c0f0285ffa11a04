package timeline

import "github.com/AnatoleLucet/railway-timeline/internal/timeutil"

// Detail is the ruler granularity chosen for a pixel density.
type Detail struct {
	// Unit is the calendar unit of one ruler segment.
	Unit timeutil.Unit
	// LabelFormat is a time layout for segment labels.
	LabelFormat string
	// Dividers is the number of gridlines drawn inside each segment.
	Dividers int
	// CenterLabel is set for fine units whose labels mark the segment start
	// and are drawn centred on the boundary.
	CenterLabel bool
}

// scale is one row of the level-of-detail table.
type scale struct {
	unit        timeutil.Unit
	minDayWidth float64
	labelFormat string
}

// divider yields count gridlines once the day width reaches factor times
// the threshold of its tier.
type divider struct {
	factor float64
	count  int
}

var (
	minuteScale = scale{unit: timeutil.Minute, minDayWidth: 60000, labelFormat: "15:04"}
	hourScale   = scale{unit: timeutil.Hour, minDayWidth: 1200, labelFormat: "15:04"}
	dayScale    = scale{unit: timeutil.Day, minDayWidth: 90, labelFormat: "Mon 2"}
	monthScale  = scale{unit: timeutil.Month, minDayWidth: 3, labelFormat: "Jan '06"}
	yearScale   = scale{unit: timeutil.Year, minDayWidth: 0, labelFormat: "2006"}
)

// detailTiers is evaluated finest first; the first tier whose threshold the
// day width reaches wins.
var detailTiers = []struct {
	scale    scale
	centered bool
	// base is the threshold the divider factors multiply. It is the tier's
	// own threshold except for years, which reuse the month threshold.
	base     float64
	dividers []divider
}{
	{
		scale:    minuteScale,
		centered: true,
		base:     minuteScale.minDayWidth,
		dividers: []divider{{factor: 5, count: 5}, {factor: 2, count: 1}},
	},
	{
		scale:    hourScale,
		centered: true,
		base:     hourScale.minDayWidth,
		dividers: []divider{{factor: 20, count: 29}, {factor: 5, count: 3}, {factor: 2, count: 1}},
	},
	{
		scale:    dayScale,
		base:     dayScale.minDayWidth,
		dividers: []divider{{factor: 5, count: 23}, {factor: 2, count: 3}},
	},
	{
		// 29 dividers approximate days; months are not all 29 days long.
		scale:    monthScale,
		base:     monthScale.minDayWidth,
		dividers: []divider{{factor: 5, count: 29}, {factor: 1.5, count: 3}},
	},
	{
		scale:    yearScale,
		base:     monthScale.minDayWidth,
		dividers: []divider{{factor: 0.3, count: 11}, {factor: 0.1, count: 3}},
	},
}

// SelectDetail picks the ruler unit and divider count for dayWidth pixels
// per day. Widths below every threshold fall back to years.
//
// The choice has no hysteresis, so zooming back and forth across a
// threshold switches units on every crossing.
func SelectDetail(dayWidth float64) Detail {
	for _, tier := range detailTiers {
		if dayWidth < tier.scale.minDayWidth {
			continue
		}
		return Detail{
			Unit:        tier.scale.unit,
			LabelFormat: tier.scale.labelFormat,
			Dividers:    dividersFor(dayWidth, tier.base, tier.dividers),
			CenterLabel: tier.centered,
		}
	}
	last := detailTiers[len(detailTiers)-1]
	return Detail{
		Unit:        last.scale.unit,
		LabelFormat: last.scale.labelFormat,
		Dividers:    dividersFor(dayWidth, last.base, last.dividers),
	}
}

func dividersFor(dayWidth, base float64, steps []divider) int {
	count := 0
	for _, step := range steps {
		if dayWidth >= base*step.factor {
			count = max(count, step.count)
		}
	}
	return count
}
