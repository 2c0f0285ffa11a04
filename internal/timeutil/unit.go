package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a calendar unit used for stepping, alignment and tessellation.
type Unit string

const (
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Month  Unit = "month"
	Year   Unit = "year"
)

// Units lists every supported unit from finest to coarsest.
var Units = []Unit{Minute, Hour, Day, Month, Year}

// nominal lengths only seed Diff's search; calendar arithmetic corrects them.
var nominalLength = map[Unit]time.Duration{
	Minute: time.Minute,
	Hour:   time.Hour,
	Day:    24 * time.Hour,
	Month:  30 * 24 * time.Hour,
	Year:   365 * 24 * time.Hour,
}

// ParseUnit accepts a unit name, case-insensitively, with an optional plural s.
func ParseUnit(value string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(value)), "s")
	for _, u := range Units {
		if string(u) == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown time unit %q", value)
}

func (u Unit) String() string { return string(u) }

// Add moves t by n units. Day steps keep the wall clock across DST changes;
// month and year steps clamp the day of month, so Jan 31 + 1 month is the
// last day of February rather than a date in March.
func Add(t time.Time, u Unit, n int) time.Time {
	switch u {
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Month:
		return addMonths(t, n)
	case Year:
		return addMonths(t, 12*n)
	default:
		return t
	}
}

func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// StartOf truncates t to the beginning of its unit, in t's location.
func StartOf(t time.Time, u Unit) time.Time {
	year, month, day := t.Date()
	loc := t.Location()
	switch u {
	case Minute:
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return t
	}
}

// EndOf returns the last millisecond of t's unit.
func EndOf(t time.Time, u Unit) time.Time {
	return Add(StartOf(t, u), u, 1).Add(-time.Millisecond)
}

// Diff returns the number of whole units between from and to, truncated
// toward zero. It is negative when to precedes from.
func Diff(from, to time.Time, u Unit) int {
	if to.Before(from) {
		return -Diff(to, from, u)
	}
	nominal, ok := nominalLength[u]
	if !ok {
		return 0
	}
	n := int(to.Sub(from) / nominal)
	for n > 0 && Add(from, u, n).After(to) {
		n--
	}
	for !Add(from, u, n+1).After(to) {
		n++
	}
	return n
}
