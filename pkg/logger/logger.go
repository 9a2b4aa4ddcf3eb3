// Package logger standardizes structured logging across the Shift Book
// services with a single slog factory configured through functional options
// or the environment (LOG_LEVEL, LOG_FORMAT).
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shiftbook/gokit/pkg/config"
)

// Format selects the handler encoding.
type Format string

const (
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*options)

type options struct {
	level   slog.Level
	format  Format
	output  io.Writer
	service string
}

// WithLevel sets the minimum log level.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. Unknown formats fall back to JSON.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f == FormatText {
			o.format = FormatText
		} else {
			o.format = FormatJSON
		}
	}
}

// WithOutput sets a custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithService attaches a service attribute to every record.
func WithService(name string) Option {
	return func(o *options) { o.service = name }
}

// New creates a configured *slog.Logger. Defaults are production-safe:
// JSON format at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if o.service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", o.service)})
	}
	return slog.New(handler)
}

// NewFromEnv creates a logger configured from LOG_LEVEL and LOG_FORMAT, with
// the usual default substitution: unset or empty variables fall back to
// "info" and "json". Unrecognized levels fall back to info.
func NewFromEnv(opts ...Option) *slog.Logger {
	envOpts := []Option{
		WithLevel(parseLevel(config.Get("LOG_LEVEL", "info"))),
		WithFormat(Format(config.Get("LOG_FORMAT", string(FormatJSON)))),
	}
	return New(append(envOpts, opts...)...)
}

// SetAsDefault installs l as the process-wide default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
