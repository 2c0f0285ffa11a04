package app

import (
	"log/slog"

	"github.com/AnatoleLucet/railway-timeline/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// It is tagged with component "app". Output follows logging.SetOutput, so
// when the command is started with --log-file nothing reaches the terminal
// the UI is drawn on.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// simultaneously logs a structured error entry with full context.
//
// The status parameter is displayed verbatim in the UI, while the err and any
// additional key-value attrs are included only in the log entry.
//
// Usage:
//
//	m.setStatusError("Failed to load deployments", err, "source", desc)
//	m.setStatusError("Clipboard copy failed", err)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	m.statusIsError = true
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}

// setStatus shows an informational message in the footer.
func (m *Model) setStatus(status string) {
	m.status = status
	m.statusIsError = false
}
