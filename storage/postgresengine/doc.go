// Package postgresengine implements the circulation row store on PostgreSQL.
//
// It persists books, members, borrowing transactions, fines and notifications
// as plain rows, building all SQL with goqu and executing it through a small
// database adapter port with implementations for pgxpool.Pool, sql.DB and
// sqlx.DB. The schema carries the storage-level guards the rule engine relies
// on: available copies can never go negative, ISBNs and member emails are
// unique, and at most one outstanding loan may exist per (member, book) pair.
//
// Observability is optional and configured via functional options: a Logger
// for SQL/debug output, a ContextualLogger for trace-correlated logging, a
// MetricsCollector for operation timings and counters, and a TracingCollector
// for spans around every query and statement.
package postgresengine
