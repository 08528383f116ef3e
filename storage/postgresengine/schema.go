package postgresengine

import (
	"context"
	"fmt"
)

// schemaDDL is the circulation schema. The guards live here on purpose:
// available_copies can never go negative, ISBNs and emails are unique, and
// the partial unique index allows at most one outstanding loan per
// (member, book) pair, backstopping the check-then-act borrow sequence.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS %[1]sbooks (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	author           TEXT NOT NULL,
	genre            TEXT NOT NULL DEFAULT '',
	isbn             TEXT NOT NULL UNIQUE,
	year_published   INTEGER NOT NULL DEFAULT 0,
	available_copies INTEGER NOT NULL CHECK (available_copies >= 0)
);

CREATE TABLE IF NOT EXISTS %[1]smembers (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	phone             TEXT NOT NULL DEFAULT '',
	address           TEXT NOT NULL DEFAULT '',
	membership_status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS %[1]sborrowing_transactions (
	id          TEXT PRIMARY KEY,
	book_id     TEXT NOT NULL REFERENCES %[1]sbooks (id),
	member_id   TEXT NOT NULL REFERENCES %[1]smembers (id),
	borrow_date TIMESTAMPTZ NOT NULL,
	return_date TIMESTAMPTZ,
	status      TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS %[1]sone_open_loan_per_member_book
	ON %[1]sborrowing_transactions (member_id, book_id)
	WHERE status = 'Borrowed';

CREATE INDEX IF NOT EXISTS %[1]sborrowing_transactions_member_idx
	ON %[1]sborrowing_transactions (member_id);

CREATE TABLE IF NOT EXISTS %[1]sfines (
	id               TEXT PRIMARY KEY,
	created_seq      BIGSERIAL,
	member_id        TEXT NOT NULL REFERENCES %[1]smembers (id),
	amount           BIGINT NOT NULL,
	status           TEXT NOT NULL,
	transaction_date TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS %[1]sfines_member_idx
	ON %[1]sfines (member_id);

CREATE TABLE IF NOT EXISTS %[1]snotifications (
	id        TEXT PRIMARY KEY,
	member_id TEXT NOT NULL,
	message   TEXT NOT NULL,
	date_sent TIMESTAMPTZ NOT NULL
);
`

// CreateSchema creates all circulation tables and indexes if they do not exist.
func (s Store) CreateSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(schemaDDL, s.tablePrefix)

	if _, err := s.executeStatement(ctx, s.tableName(tableBooks), ddl); err != nil {
		return err
	}

	s.logOperation("schema created")

	return nil
}
