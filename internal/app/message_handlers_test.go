package app

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
)

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(Options{Config: config.Default()}); err == nil {
		t.Fatal("expected an error without a source")
	}
}

func TestNewUsesConfiguredRefreshInterval(t *testing.T) {
	cfg := config.Default()
	cfg.RefreshInterval = "30s"
	m, err := New(Options{Config: cfg, Source: &fakeSource{}})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if m.refreshInterval != 30*time.Second {
		t.Fatalf("expected refresh interval 30s, got %s", m.refreshInterval)
	}
}

func TestNewAppliesTimelineConfig(t *testing.T) {
	cfg := config.Default()
	cfg.PixelsPerDay = 250
	m, err := New(Options{Config: cfg, Source: &fakeSource{}})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if got := m.timeline.State().Config.PixelsPerDay; got != 250 {
		t.Fatalf("expected 250 pixels per day, got %v", got)
	}
}

func TestInitStartsLoading(t *testing.T) {
	m, err := New(Options{Config: config.Default(), Source: &fakeSource{}})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected init commands")
	}
	if !m.loading {
		t.Fatal("expected init to start the first load")
	}
}

func TestHandleWindowResizeStoresSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 40})
	if m.width != 90 || m.height != 40 {
		t.Fatalf("expected 90x40, got %dx%d", m.width, m.height)
	}
	vp, ok := m.timeline.Viewport()
	if !ok || vp.Width != float64(m.calculateLayout().TimelineWidth) {
		t.Fatalf("expected viewport to follow the resize, got %+v", vp)
	}
}

func TestHandleWindowResizeReclampsScroll(t *testing.T) {
	m := newTestModel(t)
	setView(m, 1, 900)

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 30})
	vp, _ := m.timeline.Viewport()
	if got := m.timeline.State().ScrollOffset; got > 1000-vp.Width+1e-6 {
		t.Fatalf("expected scroll clamped to %v after widening, got %v", 1000-vp.Width, got)
	}
}

func TestHandleRefreshTick(t *testing.T) {
	m := newTestModel(t)

	m.refreshInterval = 0
	if _, cmd := m.handleRefreshTick(refreshTickMsg{}); cmd != nil {
		t.Fatal("expected disabled refresh to stop ticking")
	}

	m.refreshInterval = time.Minute
	_, cmd := m.Update(refreshTickMsg{})
	if cmd == nil {
		t.Fatal("expected reload and next tick commands")
	}
	if !m.loading {
		t.Fatal("expected refresh tick to start a load")
	}
}

func TestHandleSpinnerTickAdvances(t *testing.T) {
	m := newTestModel(t)
	before := m.spinner.View()
	m.Update(spinner.TickMsg{ID: m.spinner.ID(), Time: time.Now()})
	if m.spinner.View() == before {
		t.Fatal("expected spinner frame to advance")
	}
}
