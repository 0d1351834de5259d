package logging

import (
	"log/slog"

	"github.com/rs/zerolog"
)

// DispatchLogger adapts zerolog.Logger to the dispatch.Logger interface.
type DispatchLogger struct {
	logger zerolog.Logger
}

// NewDispatchLogger creates a DispatchLogger wrapping a zerolog.Logger.
func NewDispatchLogger(logger zerolog.Logger) *DispatchLogger {
	return &DispatchLogger{logger: logger}
}

// Debug logs a debug message with optional key-value pairs.
func (l *DispatchLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(toFields(keysAndValues)).Msg(msg)
}

// Info logs an info message with optional key-value pairs.
func (l *DispatchLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info().Fields(toFields(keysAndValues)).Msg(msg)
}

// Error logs an error message with optional key-value pairs.
func (l *DispatchLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(toFields(keysAndValues)).Msg(msg)
}

// toFields converts key-value pairs to a map for zerolog.
func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}

// SlogDispatchLogger adapts *slog.Logger to the dispatch.Logger interface.
type SlogDispatchLogger struct {
	logger *slog.Logger
}

// NewSlogDispatchLogger creates a SlogDispatchLogger wrapping a slog.Logger.
func NewSlogDispatchLogger(logger *slog.Logger) *SlogDispatchLogger {
	return &SlogDispatchLogger{logger: logger}
}

func (l *SlogDispatchLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *SlogDispatchLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *SlogDispatchLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}
