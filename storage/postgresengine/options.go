package postgresengine

import (
	"github.com/openshelf/circulation-go/shell"
)

// Logger is the plain logging port accepted by the store.
type Logger = shell.Logger

// ContextualLogger is the context-aware logging port accepted by the store.
type ContextualLogger = shell.ContextualLogger

// MetricsCollector is the metrics port accepted by the store.
type MetricsCollector = shell.MetricsCollector

// TracingCollector is the tracing port accepted by the store.
type TracingCollector = shell.TracingCollector

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithTablePrefix sets a prefix applied to all table names, so several
// deployments can share one database.
func WithTablePrefix(prefix string) Option {
	return func(s *Store) error {
		s.tablePrefix = prefix
		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: row counts and durations (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// The collector will receive query/statement durations per table and
// counters for database errors.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
// The collector will receive a span for every query and statement executed.
func WithTracing(collector TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}
