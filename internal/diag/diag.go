// Package diag provides the diagnostic log channel.
//
// Failure details never reach the terminal while the TUI runs; they are
// written as JSON lines to a rotating file instead.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/javiermolinar/animath/internal/config"
)

// Logger wraps a logrus logger and the file it writes to.
type Logger struct {
	*logrus.Logger
	closer io.Closer
}

// Open creates a logger writing to the rotating file described by cfg.
// Debug lowers the level to include key presses and state transitions.
func Open(cfg config.LogConfig, debug bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	l := New(file, debug)
	l.closer = file
	return l, nil
}

// New creates a logger writing JSON lines to w.
func New(w io.Writer, debug bool) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	base.SetLevel(logrus.InfoLevel)
	if debug {
		base.SetLevel(logrus.DebugLevel)
	}
	return &Logger{Logger: base}
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return New(io.Discard, false)
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
