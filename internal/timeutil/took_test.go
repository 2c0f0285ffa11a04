package timeutil

import "testing"

func TestTook(t *testing.T) {
	start := mustTime(t, "2023-01-01T00:00:00Z")

	tests := []struct {
		name string
		end  string
		want string
	}{
		{name: "hours", end: "2023-01-01T02:00:00Z", want: "Took 2 hours"},
		{name: "short", end: "2023-01-01T00:00:05Z", want: "Took a few seconds"},
		{name: "one minute", end: "2023-01-01T00:01:10Z", want: "Took a minute"},
		{name: "minutes", end: "2023-01-01T00:12:00Z", want: "Took 12 minutes"},
		{name: "days", end: "2023-01-04T00:00:00Z", want: "Took 3 days"},
		{name: "few seconds up to 44s", end: "2023-01-01T00:00:44Z", want: "Took a few seconds"},
		{name: "minute from 45s", end: "2023-01-01T00:00:45Z", want: "Took a minute"},
		{name: "minutes round up", end: "2023-01-01T00:01:40Z", want: "Took 2 minutes"},
		{name: "hour below 90 minutes", end: "2023-01-01T01:29:00Z", want: "Took an hour"},
		{name: "hours round up", end: "2023-01-01T03:40:00Z", want: "Took 4 hours"},
		{name: "day below 36 hours", end: "2023-01-02T11:00:00Z", want: "Took a day"},
		{name: "days from 36 hours", end: "2023-01-02T12:00:00Z", want: "Took 2 days"},
		{name: "month", end: "2023-02-10T00:00:00Z", want: "Took a month"},
		{name: "months", end: "2023-04-01T00:00:00Z", want: "Took 3 months"},
		{name: "year", end: "2024-01-01T00:00:00Z", want: "Took a year"},
		{name: "years", end: "2026-01-01T00:00:00Z", want: "Took 3 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Took(start, mustTime(t, tt.end)); got != tt.want {
				t.Fatalf("Took: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElapsedIgnoresArgumentOrder(t *testing.T) {
	a := mustTime(t, "2023-01-01T00:00:00Z")
	b := mustTime(t, "2023-01-01T05:00:00Z")
	if Elapsed(a, b) != Elapsed(b, a) {
		t.Fatalf("expected symmetric output, got %q and %q", Elapsed(a, b), Elapsed(b, a))
	}
}
