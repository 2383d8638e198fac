// Package logging defines the structured-logging interface used across the
// server. Two backends are provided: log/slog and zap.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "counter incremented", "value", v)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatSlog = "slog"
	FormatZap  = "zap"
)

// New builds a JSON logger writing to stdout for the given backend
// ("slog" or "zap") and level name ("debug", "info", "warn", "error").
func New(format, level string) (Logger, error) {
	switch format {
	case "", FormatSlog:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), nil

	case FormatZap:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		l, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("zap build: %w", err)
		}
		return NewZapLogger(l), nil

	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
