// Package logging sets up the debug logger. The TUI owns the terminal, so
// logs only ever go to a file, and only when verbose mode is on.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/diogo/gompei/internal/config"
)

// Logger wraps a zerolog logger together with the file it writes to
type Logger struct {
	zerolog.Logger
	file io.Closer
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// New returns a file logger when cfg.Verbose is set and a no-op logger otherwise
func New(cfg config.Config) (*Logger, error) {
	if !cfg.Verbose {
		return Nop(), nil
	}

	path, err := config.GetLogPath(cfg)
	if err != nil {
		return Nop(), err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return Nop(), fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return Nop(), fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewWithWriter(file, zerolog.DebugLevel)
	logger.file = file
	return logger, nil
}

// NewWithWriter returns a logger writing JSON lines to w
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := zerolog.New(w).Level(level).With().Timestamp().Str("app", "gompei").Logger()
	return &Logger{Logger: l}
}

// Component returns a child logger tagged with the component name
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the underlying log file, if any
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
