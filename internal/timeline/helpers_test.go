package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

const tolerance = 1e-6

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func mustRange(t *testing.T, start, end string) timeutil.Range {
	t.Helper()
	return timeutil.NewRange(mustTime(t, start), mustTime(t, end))
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func assertApprox(t *testing.T, label string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
}

// oneDayState mirrors the default setup: one day, baseline zoom, 100px/day.
func oneDayState(t *testing.T) State {
	t.Helper()
	return NewState(mustRange(t, "2023-01-01T00:00:00Z", "2023-01-02T00:00:00Z"), Config{})
}

// fixedMeasurer reports a fixed viewport once laid out.
type fixedMeasurer struct {
	vp      Viewport
	laidOut bool
}

func (m *fixedMeasurer) Measure() (Viewport, bool) {
	return m.vp, m.laidOut
}
