package timeutil

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// tookMagnitudes follows the usual relative-time wording. Each bucket ends
// where the rounded count would reach the next bucket, so 100 seconds is
// "2 minutes" and 3h40m is "4 hours".
var tookMagnitudes = []humanize.RelTimeMagnitude{
	{D: 44*time.Second + 500*time.Millisecond, Format: "a few seconds", DivBy: time.Second},
	{D: 90 * time.Second, Format: "a minute", DivBy: time.Minute},
	{D: 44*time.Minute + 30*time.Second, Format: "%d minutes", DivBy: time.Minute},
	{D: 90 * time.Minute, Format: "an hour", DivBy: time.Hour},
	{D: 21*time.Hour + 30*time.Minute, Format: "%d hours", DivBy: time.Hour},
	{D: 36 * time.Hour, Format: "a day", DivBy: day},
	{D: 25*day + 12*time.Hour, Format: "%d days", DivBy: day},
	{D: 45*day + 12*time.Hour, Format: "a month", DivBy: month},
	{D: 315 * day, Format: "%d months", DivBy: month},
	{D: 18 * month, Format: "a year", DivBy: year},
	{D: math.MaxInt64, Format: "%d years", DivBy: year},
}

// Elapsed renders the distance between start and end, e.g. "2 hours" or
// "a few seconds". Counts are rounded to the nearest unit. The order of the
// arguments does not matter.
func Elapsed(start, end time.Time) string {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	for _, mag := range tookMagnitudes {
		if diff < mag.D {
			diff = diff.Round(mag.DivBy)
			break
		}
	}
	return humanize.CustomRelTime(start, start.Add(diff), "", "", tookMagnitudes)
}

// Took renders how long something between start and end took, e.g.
// "Took 2 hours".
func Took(start, end time.Time) string {
	return "Took " + Elapsed(start, end)
}
