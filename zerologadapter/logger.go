// Package zerologadapter implements shell.Logger on top of zerolog,
// for CLI and service processes that already log through zerolog.
package zerologadapter

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openshelf/circulation-go/shell"
)

// Logger adapts a zerolog.Logger to the shell.Logger port.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates a new adapter around the given zerolog logger.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Debug logs a debug message with slog-style key-value args.
func (l *Logger) Debug(msg string, args ...any) {
	l.emit(l.logger.Debug(), msg, args)
}

// Info logs an info message with slog-style key-value args.
func (l *Logger) Info(msg string, args ...any) {
	l.emit(l.logger.Info(), msg, args)
}

// Warn logs a warning message with slog-style key-value args.
func (l *Logger) Warn(msg string, args ...any) {
	l.emit(l.logger.Warn(), msg, args)
}

// Error logs an error message with slog-style key-value args.
func (l *Logger) Error(msg string, args ...any) {
	l.emit(l.logger.Error(), msg, args)
}

// emit attaches the key-value pairs as zerolog fields. Args come in pairs
// like slog; a trailing odd value is logged under the "arg" key.
func (l *Logger) emit(event *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			event = event.Interface("arg", args[i])
			break
		}

		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}

		event = event.Interface(key, args[i+1])
	}

	event.Msg(msg)
}

var _ shell.Logger = (*Logger)(nil)
