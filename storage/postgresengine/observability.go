package postgresengine

import (
	"context"
	"time"

	"github.com/openshelf/circulation-go/shell"
)

const (
	metricQueryDuration     = "circulation_store_query_duration_seconds"
	metricStatementDuration = "circulation_store_statement_duration_seconds"
	metricDatabaseErrors    = "circulation_store_database_errors_total"

	statusSuccess = "success"
	statusError   = "error"

	spanAttrTable     = "db.table"
	spanAttrOperation = "db.operation"
)

// logQueryWithDuration logs SQL with execution time at debug level if a logger is configured.
func (s Store) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (s Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information on both configured loggers.
func (s Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}

	s.recordErrorMetric(message)
}

// recordDuration records an operation duration if a metrics collector is configured.
func (s Store) recordDuration(metric string, duration time.Duration, table string, status string) {
	if s.metricsCollector != nil {
		s.metricsCollector.RecordDuration(metric, duration, map[string]string{
			spanAttrTable: table,
			"status":      status,
		})
	}
}

// recordErrorMetric counts a database error if a metrics collector is configured.
func (s Store) recordErrorMetric(errorType string) {
	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metricDatabaseErrors, map[string]string{
			"error_type": errorType,
		})
	}
}

// startSpan opens a tracing span if a tracing collector is configured.
func (s Store) startSpan(ctx context.Context, operation string, table string) (context.Context, shell.SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, "circulation.store."+operation, map[string]string{
		spanAttrOperation: operation,
		spanAttrTable:     table,
	})
}

// finishSpan closes a tracing span if one was opened.
func (s Store) finishSpan(span shell.SpanContext, status string) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, status, nil)
}

// statusFor maps an error to a metric status label.
func statusFor(err error) string {
	if err != nil {
		return statusError
	}

	return statusSuccess
}
