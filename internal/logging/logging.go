// Package logging writes the application log to a size-rotated file so the
// terminal stays free for the UI.
package logging

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the log file.
type Config struct {
	Path       string // empty disables logging
	MaxSizeMB  int
	MaxBackups int
}

// Logger is a file-backed logger. A nil *Logger discards everything.
type Logger struct {
	logger *log.Logger
	file   *lumberjack.Logger
}

// New opens a rotating log at cfg.Path. The file is created lazily on the
// first write.
func New(cfg Config) *Logger {
	if cfg.Path == "" {
		return &Logger{logger: log.New(io.Discard, "", 0)}
	}
	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB, // megabytes; lumberjack defaults to 100
		MaxBackups: cfg.MaxBackups,
		MaxAge:     28, // days
	}
	return &Logger{
		logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}
}

// Logf logs a formatted line.
func (l *Logger) Logf(format string, v ...any) {
	if l == nil {
		return
	}
	l.logger.Printf(format, v...)
}

// Close releases the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
