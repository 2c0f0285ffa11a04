package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/timeline"
	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

// fakeSource returns a fixed snapshot or error and counts loads.
type fakeSource struct {
	snapshot deploy.Snapshot
	err      error
	loads    int
}

func (f *fakeSource) Load(ctx context.Context) (deploy.Snapshot, error) {
	f.loads++
	if err := ctx.Err(); err != nil {
		return deploy.Snapshot{}, err
	}
	return f.snapshot, f.err
}

func (f *fakeSource) Describe() string { return "fake" }

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func testDeployment(id string, status deploy.Status, start, end time.Time) deploy.Deployment {
	return deploy.Deployment{
		ID:        id,
		Status:    status,
		CreatedAt: start,
		Events: []deploy.Event{
			{ID: id + "-build", Step: "BUILD", CreatedAt: start, CompletedAt: start.Add(end.Sub(start) / 2)},
			{ID: id + "-deploy", Step: "DEPLOY", CreatedAt: end, CompletedAt: end},
		},
	}
}

// fixtureSnapshot holds two services over ten days. d4 has a zero-length
// range and is skipped by the UI.
func fixtureSnapshot() deploy.Snapshot {
	extent := timeutil.NewRange(at(1, 0, 0), at(11, 0, 0))
	return deploy.Snapshot{
		Project: deploy.Project{
			ID:   "proj-1",
			Name: "demo",
			Services: []deploy.Service{
				{
					ID:   "svc-api",
					Name: "api",
					Deployments: []deploy.Deployment{
						testDeployment("d1", deploy.StatusSuccess, at(2, 10, 0), at(2, 12, 0)),
						testDeployment("d3", deploy.StatusFailed, at(5, 9, 0), at(5, 9, 30)),
					},
				},
				{
					ID:   "svc-web",
					Name: "web",
					Deployments: []deploy.Deployment{
						testDeployment("d2", deploy.StatusSuccess, at(3, 8, 0), at(3, 10, 0)),
						testDeployment("d4", deploy.StatusSkipped, at(5, 8, 0), at(5, 8, 0)),
					},
				},
			},
		},
		Environment: deploy.Environment{ID: "env-1", Name: "production", CreatedAt: at(1, 0, 0)},
		FetchedAt:   testNow.Add(-5 * time.Minute),
		Range:       &extent,
	}
}

func newTestModelWithSource(t *testing.T, source *fakeSource, cfg config.Config) *Model {
	t.Helper()
	m, err := New(Options{
		Config: cfg,
		Source:   source,
		Now:      func() time.Time { return testNow },
		Location: time.UTC,
	})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	runCmd(t, m, m.startLoad())
	return m
}

// newTestModel returns a 120x30 model with fixtureSnapshot loaded.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	return newTestModelWithSource(t, &fakeSource{snapshot: fixtureSnapshot()}, config.Default())
}

// runCmd executes a load command synchronously and feeds its message back.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if _, ok := msg.(snapshotLoadedMsg); !ok {
		t.Fatalf("expected snapshotLoadedMsg, got %T", msg)
	}
	m.Update(msg)
}

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// setView places the timeline at an explicit zoom and scroll offset.
func setView(m *Model, zoom, scroll float64) {
	m.timeline.Apply(func(s timeline.State) timeline.State {
		s.ZoomFactor = zoom
		s.ScrollOffset = scroll
		return s
	})
}

func assertApprox(t *testing.T, label string, got, want float64) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-6 {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
}

func lineBlock(count int) string {
	lines := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		lines = append(lines, "line")
	}
	return strings.Join(lines, "\n")
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
