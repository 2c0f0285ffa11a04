// Package logging provides the shared structured logger for railway-timeline.
//
// It wraps [log/slog] with a single text handler so every component shares
// the same output and level. The level is read once from the
// RAILWAY_TIMELINE_LOG_LEVEL environment variable (debug, info, warn, error)
// and defaults to INFO.
//
// Usage:
//
//	log := logging.New("railway")
//	log.Debug("query", "operation", "deployments")
//	log.Error("fetch failed", "error", err)
//
// Output goes to stderr until SetOutput redirects it. The TUI owns the
// alternate screen on stdout, so callers usually point the logger at a file
// with SetOutput before starting the program.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "RAILWAY_TIMELINE_LOG_LEVEL"

var (
	// initLogger ensures the base logger is created exactly once across all
	// goroutines, even if multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton logger instance shared by all components.
	// Component-specific loggers are derived from this via With().
	baseLogger *slog.Logger

	// sink is the writer behind baseLogger. Loggers created before a call to
	// SetOutput follow the redirect because they share this writer.
	sink = &switchWriter{w: os.Stderr}
)

// New returns a structured logger scoped to the given component name.
//
// The component name is added as a "component" attribute to every entry.
// If component is empty, the base logger is returned as is.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{
			Level: parseLevel(os.Getenv(LevelEnv)),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetOutput redirects every logger returned by New to w. A nil writer
// discards output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	sink.set(w)
}

// OpenFile opens path for appending and redirects log output to it. The
// returned closer restores stderr and closes the file.
func OpenFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return closerFunc(func() error {
		SetOutput(os.Stderr)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// switchWriter serializes writes and allows the destination to change while
// loggers hold a reference to it.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
