package postgresengine

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/storage/postgresengine/internal/adapters"
)

const (
	colTxID         = "id"
	colTxBookID     = "book_id"
	colTxMemberID   = "member_id"
	colTxBorrowDate = "borrow_date"
	colTxReturnDate = "return_date"
	colTxStatus     = "status"
)

// InsertTransaction inserts a new borrowing transaction. The partial unique
// index on (member_id, book_id) for outstanding rows maps a violation to
// core.ErrBookAlreadyBorrowed.
func (s Store) InsertTransaction(ctx context.Context, transaction core.BorrowingTransaction) error {
	record := goqu.Record{
		colTxID:         transaction.ID.String(),
		colTxBookID:     transaction.BookID.String(),
		colTxMemberID:   transaction.MemberID.String(),
		colTxBorrowDate: transaction.BorrowDate,
		colTxStatus:     transaction.Status.String(),
	}

	if core.IsNoReturnDate(transaction.ReturnDate) {
		record[colTxReturnDate] = nil
	} else {
		record[colTxReturnDate] = transaction.ReturnDate
	}

	sqlQuery, _, toSQLErr := s.builder().
		Insert(s.tableName(tableTransactions)).
		Rows(record).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableTransactions)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	if _, err := s.executeStatement(ctx, tableTransactions, sqlQuery); err != nil {
		if isUniqueViolation(err) {
			return core.ErrBookAlreadyBorrowed
		}

		return err
	}

	return nil
}

// GetTransactionByID fetches one borrowing transaction by id.
func (s Store) GetTransactionByID(ctx context.Context, id uuid.UUID) (core.BorrowingTransaction, error) {
	transactions, err := s.listTransactions(ctx, goqu.Ex{colTxID: id.String()})
	if err != nil {
		return core.BorrowingTransaction{}, err
	}

	if len(transactions) == 0 {
		return core.BorrowingTransaction{}, core.ErrTransactionNotFoundOrReturned
	}

	return transactions[0], nil
}

// ListTransactions returns all borrowing transactions.
func (s Store) ListTransactions(ctx context.Context) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(ctx, nil)
}

// ListTransactionsByMember returns all transactions of one member.
func (s Store) ListTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(ctx, goqu.Ex{colTxMemberID: memberID.String()})
}

// ListTransactionsByMemberName returns all transactions of members with the given name.
func (s Store) ListTransactionsByMemberName(ctx context.Context, name string) ([]core.BorrowingTransaction, error) {
	memberIDs := s.builder().
		From(s.tableName(tableMembers)).
		Select(colMemberID).
		Where(goqu.Ex{colMemberName: name})

	return s.listTransactionsWhere(ctx, goqu.C(colTxMemberID).In(memberIDs))
}

// ListOutstandingTransactions returns every transaction that has not been returned.
func (s Store) ListOutstandingTransactions(ctx context.Context) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(ctx, goqu.Ex{colTxStatus: core.TransactionBorrowed.String()})
}

// ListOutstandingTransactionsByMember returns a member's open loans.
func (s Store) ListOutstandingTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(ctx, goqu.Ex{
		colTxStatus:   core.TransactionBorrowed.String(),
		colTxMemberID: memberID.String(),
	})
}

// ListOutstandingTransactionsByBook returns a book's open loans.
func (s Store) ListOutstandingTransactionsByBook(ctx context.Context, bookID uuid.UUID) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(ctx, goqu.Ex{
		colTxStatus: core.TransactionBorrowed.String(),
		colTxBookID: bookID.String(),
	})
}

// ListOverdueTransactions returns every outstanding transaction whose due
// date lies before asOf.
func (s Store) ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]core.BorrowingTransaction, error) {
	return s.listTransactionsWhere(ctx,
		goqu.And(
			goqu.Ex{colTxStatus: core.TransactionBorrowed.String()},
			goqu.L(colTxBorrowDate+" + INTERVAL '14 days' < ?", asOf.UTC()),
		),
	)
}

func (s Store) listTransactions(ctx context.Context, where goqu.Ex) ([]core.BorrowingTransaction, error) {
	if where == nil {
		return s.listTransactionsWhere(ctx, nil)
	}

	return s.listTransactionsWhere(ctx, where)
}

func (s Store) listTransactionsWhere(ctx context.Context, where goqu.Expression) ([]core.BorrowingTransaction, error) {
	selectStmt := s.builder().
		From(s.tableName(tableTransactions)).
		Select(colTxID, colTxBookID, colTxMemberID, colTxBorrowDate, colTxReturnDate, colTxStatus).
		Order(goqu.I(colTxBorrowDate).Asc())

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableTransactions)
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, tableTransactions, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	return s.scanTransactions(ctx, rows)
}

func (s Store) scanTransactions(ctx context.Context, rows adapters.DBRows) ([]core.BorrowingTransaction, error) {
	transactions := make([]core.BorrowingTransaction, 0)

	for rows.Next() {
		var (
			idRaw       string
			bookIDRaw   string
			memberIDRaw string
			borrowDate  time.Time
			returnDate  *time.Time
			statusRaw   string
		)

		if err := rows.Scan(&idRaw, &bookIDRaw, &memberIDRaw, &borrowDate, &returnDate, &statusRaw); err != nil {
			s.logError(ctx, logMsgScanRowFailed, err, logAttrTable, tableTransactions)
			return nil, errors.Join(ErrScanningRowFailed, err)
		}

		transaction, buildErr := buildTransactionFromRow(idRaw, bookIDRaw, memberIDRaw, borrowDate, returnDate, statusRaw)
		if buildErr != nil {
			s.logError(ctx, logMsgScanRowFailed, buildErr, logAttrTable, tableTransactions)
			return nil, errors.Join(ErrScanningRowFailed, buildErr)
		}

		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func buildTransactionFromRow(
	idRaw string,
	bookIDRaw string,
	memberIDRaw string,
	borrowDate time.Time,
	returnDate *time.Time,
	statusRaw string,
) (core.BorrowingTransaction, error) {

	id, err := uuid.Parse(idRaw)
	if err != nil {
		return core.BorrowingTransaction{}, err
	}

	bookID, err := uuid.Parse(bookIDRaw)
	if err != nil {
		return core.BorrowingTransaction{}, err
	}

	memberID, err := uuid.Parse(memberIDRaw)
	if err != nil {
		return core.BorrowingTransaction{}, err
	}

	status, err := core.ParseTransactionStatus(statusRaw)
	if err != nil {
		return core.BorrowingTransaction{}, err
	}

	transaction := core.BorrowingTransaction{
		ID:         id,
		BookID:     bookID,
		MemberID:   memberID,
		BorrowDate: borrowDate,
		ReturnDate: core.NoReturnDate,
		Status:     status,
	}

	if returnDate != nil {
		transaction.ReturnDate = *returnDate
	}

	return transaction, nil
}

// MarkTransactionReturned closes an outstanding transaction. A transaction
// that is missing or already returned maps to core.ErrTransactionNotFoundOrReturned.
func (s Store) MarkTransactionReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error {
	sqlQuery, _, toSQLErr := s.builder().
		Update(s.tableName(tableTransactions)).
		Set(goqu.Record{
			colTxStatus:     core.TransactionReturned.String(),
			colTxReturnDate: returnedAt.UTC(),
		}).
		Where(
			goqu.Ex{colTxID: id.String()},
			goqu.C(colTxStatus).Neq(core.TransactionReturned.String()),
		).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableTransactions)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableTransactions, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrTransactionNotFoundOrReturned
	}

	return nil
}

// DeleteTransaction removes a transaction row.
func (s Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := s.builder().
		Delete(s.tableName(tableTransactions)).
		Where(goqu.Ex{colTxID: id.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableTransactions)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableTransactions, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrTransactionNotFoundOrReturned
	}

	return nil
}
