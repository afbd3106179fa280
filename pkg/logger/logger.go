// Package logger provides a thin structured-logging layer over log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LoggerInterface defines the interface for logging operations
type LoggerInterface interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
}

// Logger wraps slog.Logger
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Output    io.Writer
	Format    string // "json" or "text"
	AddSource bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Output:    os.Stdout,
		Format:    "json",
		AddSource: false,
	}
}

// New creates a new logger instance with the given configuration
func New(config Config) LoggerInterface {
	opts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = slog.NewTextHandler(config.Output, opts)
	default:
		handler = slog.NewJSONHandler(config.Output, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewWithOptions creates a new logger with options
func NewWithOptions(opts ...Option) LoggerInterface {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return New(config)
}

// NewDefault creates a new logger with default configuration
func NewDefault() LoggerInterface {
	return New(DefaultConfig())
}

// NewJSONDefault creates a new JSON logger with default settings
func NewJSONDefault() LoggerInterface {
	config := DefaultConfig()
	config.Format = "json"
	return New(config)
}

// NewTextDefault creates a new text logger with default settings
func NewTextDefault() LoggerInterface {
	config := DefaultConfig()
	config.Format = "text"
	return New(config)
}

// NoOpLogger returns a logger that does nothing - useful for testing
func NoOpLogger() LoggerInterface {
	return &Logger{
		Logger: slog.New(noOpHandler{}),
	}
}

// noOpHandler is a no-op implementation of slog.Handler
type noOpHandler struct{}

func (h noOpHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h noOpHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h noOpHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h noOpHandler) WithGroup(_ string) slog.Handler {
	return h
}
