// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"

	"go.trai.ch/lockdiff/internal/core/ports"
)

// metadater describes an error that carries structured metadata.
// This matches the Metadata() method provided by zerr.Error; other errors
// fall back to plain message logging.
type metadater interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog with the pretty handler.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr at Info level.
func New() ports.Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, level)),
		level:  level,
	}
}

// SetOutput updates the logger's output destination. Used for testing.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(NewPrettyHandler(w, l.level))
}

// SetVerbose lowers the level threshold to Debug.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// Debug logs a debug message. Only visible in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Error logs an error. zerr metadata is flattened into attributes so the
// offending identifiers stay greppable.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	var withMeta metadater
	if errors.As(err, &withMeta) {
		meta := withMeta.Metadata()
		attrs := make([]any, 0, len(meta)*2)
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		// Sorted for stable output
		slices.Sort(keys)
		for _, k := range keys {
			attrs = append(attrs, k, meta[k])
		}
		l.logger.Error(err.Error(), attrs...)
		return
	}

	l.logger.Error(err.Error())
}
