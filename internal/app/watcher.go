// watcher.go implements poll-based monitoring of the dataset file.
//
// Every poll interval (default: 2 s) the file is stat'ed and its
// modification time and size are compared with the previous observation.
// Any difference, including the file appearing or disappearing, triggers a
// reload. The first tick only records the baseline.
package app

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fileWatchTickMsg is the Bubble Tea message emitted by the periodic poll timer.
type fileWatchTickMsg struct{}

// fileWatchEntry records the observable attributes of the watched file.
// UnixNano keeps equality comparison trivial.
type fileWatchEntry struct {
	Exists  bool
	ModNano int64
	Size    int64
	Seen    bool
}

// scheduleFileWatchTick queues the next poll after the configured interval.
func (m *Model) scheduleFileWatchTick() tea.Cmd {
	return tea.Tick(m.effectiveFileWatchInterval(), func(time.Time) tea.Msg {
		return fileWatchTickMsg{}
	})
}

func (m *Model) effectiveFileWatchInterval() time.Duration {
	if m.fileWatchInterval <= 0 {
		return DefaultFileWatchInterval
	}
	return m.fileWatchInterval
}

// handleFileWatchTick compares the file with the last observation and
// reloads on change. The next poll is always scheduled.
func (m *Model) handleFileWatchTick(_ fileWatchTickMsg) (tea.Model, tea.Cmd) {
	if m.watchPath == "" {
		return m, nil
	}
	entry, err := statFileWatchEntry(m.watchPath)
	if err != nil {
		appLog.Warn("stat watched file", "path", m.watchPath, "error", err)
		return m, m.scheduleFileWatchTick()
	}

	if !m.fileWatchEntry.Seen {
		m.fileWatchEntry = entry
		return m, m.scheduleFileWatchTick()
	}
	if entry == m.fileWatchEntry {
		return m, m.scheduleFileWatchTick()
	}

	m.fileWatchEntry = entry
	if !entry.Exists {
		m.setStatus("Dataset file removed; keeping the last data")
		return m, m.scheduleFileWatchTick()
	}
	m.setStatus("Dataset changed, reloading")
	return m, tea.Batch(m.startLoad(), m.scheduleFileWatchTick())
}

func statFileWatchEntry(path string) (fileWatchEntry, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fileWatchEntry{Seen: true}, nil
	}
	if err != nil {
		return fileWatchEntry{}, err
	}
	return fileWatchEntry{
		Exists:  true,
		ModNano: info.ModTime().UnixNano(),
		Size:    info.Size(),
		Seen:    true,
	}, nil
}
