package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
)

func newWatchedModel(t *testing.T) (*Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployments.yaml")
	mustWriteFile(t, path, "project: {id: p}\n")

	m := newTestModelWithSource(t, &fakeSource{snapshot: fixtureSnapshot()}, config.Default())
	m.watchPath = path
	return m, path
}

func TestHandleFileWatchTickRecordsBaselineFirst(t *testing.T) {
	m, _ := newWatchedModel(t)

	_, cmd := m.handleFileWatchTick(fileWatchTickMsg{})
	if cmd == nil {
		t.Fatal("expected the next poll to be scheduled")
	}
	if !m.fileWatchEntry.Seen || !m.fileWatchEntry.Exists {
		t.Fatalf("expected baseline entry, got %+v", m.fileWatchEntry)
	}
	if m.loading {
		t.Fatal("expected the baseline poll not to reload")
	}
}

func TestHandleFileWatchTickReloadsOnChange(t *testing.T) {
	m, path := newWatchedModel(t)
	m.handleFileWatchTick(fileWatchTickMsg{})

	m.handleFileWatchTick(fileWatchTickMsg{})
	if m.loading {
		t.Fatal("expected an unchanged file not to reload")
	}

	mustWriteFile(t, path, "project: {id: p, name: changed}\n")
	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	_, cmd := m.handleFileWatchTick(fileWatchTickMsg{})
	if cmd == nil {
		t.Fatal("expected reload and next poll commands")
	}
	if !m.loading {
		t.Fatal("expected a changed file to start a reload")
	}
	if m.status != "Dataset changed, reloading" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestHandleFileWatchTickKeepsDataWhenFileRemoved(t *testing.T) {
	m, path := newWatchedModel(t)
	m.handleFileWatchTick(fileWatchTickMsg{})

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m.handleFileWatchTick(fileWatchTickMsg{})
	if m.loading {
		t.Fatal("expected no reload for a removed file")
	}
	if m.fileWatchEntry.Exists {
		t.Fatal("expected the entry to record the removal")
	}
	if len(m.located) == 0 {
		t.Fatal("expected the last data to stay on screen")
	}

	mustWriteFile(t, path, "project: {id: p}\n")
	m.handleFileWatchTick(fileWatchTickMsg{})
	if !m.loading {
		t.Fatal("expected the file reappearing to trigger a reload")
	}
}

func TestHandleFileWatchTickWithoutPathStops(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.handleFileWatchTick(fileWatchTickMsg{}); cmd != nil {
		t.Fatal("expected no further polls without a watch path")
	}
}

func TestEffectiveFileWatchIntervalDefaults(t *testing.T) {
	m := &Model{}
	if got := m.effectiveFileWatchInterval(); got != DefaultFileWatchInterval {
		t.Fatalf("expected default interval %s, got %s", DefaultFileWatchInterval, got)
	}
	m.fileWatchInterval = 5 * time.Second
	if got := m.effectiveFileWatchInterval(); got != 5*time.Second {
		t.Fatalf("expected 5s, got %s", got)
	}
}
