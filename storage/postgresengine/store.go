package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/openshelf/circulation-go/shell"
	"github.com/openshelf/circulation-go/storage/postgresengine/internal/adapters"
)

const (
	tableBooks         = "books"
	tableMembers       = "members"
	tableTransactions  = "borrowing_transactions"
	tableFines         = "fines"
	tableNotifications = "notifications"

	dialectPostgres = "postgres"

	pgUniqueViolationCode = "23505"

	logMsgBuildQueryFailed = "failed to build sql query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgDBExecFailed     = "database statement execution failed"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgSQLExecuted      = "executed sql for: "
	logMsgOperation        = "store operation: "
	logAttrError           = "error"
	logAttrQuery           = "query"
	logAttrDurationMS      = "duration_ms"
	logAttrRowsAffected    = "rows_affected"
	logAttrTable           = "table"
)

// ErrNilDatabaseConnection is returned when a store is constructed with a nil connection.
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// ErrBuildingQueryFailed wraps goqu SQL generation failures.
var ErrBuildingQueryFailed = errors.New("building sql query failed")

// ErrQueryFailed wraps database read failures.
var ErrQueryFailed = errors.New("executing database query failed")

// ErrStatementFailed wraps database write failures.
var ErrStatementFailed = errors.New("executing database statement failed")

// ErrScanningRowFailed wraps row scan failures.
var ErrScanningRowFailed = errors.New("scanning database row failed")

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

var _ shell.Store = Store{}

// Store is the PostgreSQL implementation of the circulation store ports.
// It leverages a database adapter and supports customizable logging, metrics,
// tracing and a table-name prefix.
type Store struct {
	db               adapters.DBAdapter
	tablePrefix      string
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return applyOptions(Store{db: adapters.NewPGXAdapter(db)}, options)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return applyOptions(Store{db: adapters.NewSQLAdapter(db)}, options)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return applyOptions(Store{db: adapters.NewSQLXAdapter(db)}, options)
}

func applyOptions(s Store, options []Option) (Store, error) {
	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// builder returns the goqu dialect wrapper used for all SQL generation.
func (s Store) builder() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

// tableName applies the configured prefix to a base table name.
func (s Store) tableName(base string) string {
	return s.tablePrefix + base
}

// executeQuery runs a read query through the adapter with timing, logging and tracing.
func (s Store) executeQuery(ctx context.Context, table string, sqlQuery sqlQueryString) (adapters.DBRows, error) {
	ctx, span := s.startSpan(ctx, "query", table)

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)

	s.logQueryWithDuration(sqlQuery, "query", duration)
	s.recordDuration(metricQueryDuration, duration, table, statusFor(queryErr))

	if queryErr != nil {
		s.finishSpan(span, statusError)
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)

		return nil, errors.Join(ErrQueryFailed, queryErr)
	}

	s.finishSpan(span, statusSuccess)

	return rows, nil
}

// executeStatement runs a write statement through the adapter with timing, logging and tracing.
func (s Store) executeStatement(ctx context.Context, table string, sqlQuery sqlQueryString) (rowsAffectedInt64, error) {
	ctx, span := s.startSpan(ctx, "exec", table)

	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)

	s.logQueryWithDuration(sqlQuery, "exec", duration)
	s.recordDuration(metricStatementDuration, duration, table, statusFor(execErr))

	if execErr != nil {
		s.finishSpan(span, statusError)
		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)

		return 0, errors.Join(ErrStatementFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.finishSpan(span, statusError)
		s.logError(ctx, logMsgDBExecFailed, rowsAffectedErr)

		return 0, errors.Join(ErrStatementFailed, rowsAffectedErr)
	}

	s.finishSpan(span, statusSuccess)

	return rowsAffected, nil
}

// closeRows safely closes database rows and logs any errors.
func (s Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// across the pgx, lib/pq and generic driver error shapes.
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolationCode
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolationCode
	}

	return strings.Contains(err.Error(), "duplicate key value")
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
