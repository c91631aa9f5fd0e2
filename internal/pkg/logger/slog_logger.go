package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts a *slog.Logger to the variadic Logger interface.
type slogLogger struct {
	logger *slog.Logger
	exit   func(int)
}

// NewConsoleLogger creates a logger writing text records to stdout.
func NewConsoleLogger(level string) Logger {
	return NewStreamLogger(os.Stdout, level)
}

// NewStreamLogger creates a logger writing text records to w. The CLI hands it
// stderr so command results on stdout stay free of log records.
func NewStreamLogger(w io.Writer, level string) Logger {
	return newWriterLogger(w, level, false)
}

// NewFileLogger creates a logger writing JSON records to a rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return newWriterLogger(writer, level, true)
}

func newWriterLogger(w io.Writer, level string, structured bool) *slogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &slogLogger{logger: slog.New(handler), exit: os.Exit}
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs an error message and exits with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	l.exit(1)
}

// Panic logs an error message and panics with it.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
