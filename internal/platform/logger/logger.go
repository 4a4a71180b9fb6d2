// Package logger provides structured logging for the island server,
// built on zap.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger with the small surface the engine uses.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a logger at the given level ("debug", "info", "warn",
// "error"). Unknown levels fall back to info.
func NewLogger(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.sugar.Info(msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.sugar.Warn(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.sugar.Error(msg)
}

// Event logs a game event with its actor for session tracing.
func (l *Logger) Event(eventType, actorID, details string) {
	l.sugar.Infow("game event", "event", eventType, "actor", actorID, "details", details)
}

// Sync flushes buffered entries. Call on shutdown.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
