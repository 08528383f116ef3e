package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/storage/postgresengine/internal/adapters"
)

const (
	colBookID          = "id"
	colBookTitle       = "title"
	colBookAuthor      = "author"
	colBookGenre       = "genre"
	colBookISBN        = "isbn"
	colBookYear        = "year_published"
	colAvailableCopies = "available_copies"
)

// InsertBook inserts a new catalog record.
// A unique-constraint violation on the ISBN maps to core.ErrDuplicateISBN.
func (s Store) InsertBook(ctx context.Context, book core.Book) error {
	sqlQuery, _, toSQLErr := s.builder().
		Insert(s.tableName(tableBooks)).
		Rows(goqu.Record{
			colBookID:          book.ID.String(),
			colBookTitle:       book.Title,
			colBookAuthor:      book.Author,
			colBookGenre:       book.Genre,
			colBookISBN:        book.ISBN,
			colBookYear:        book.YearPublished,
			colAvailableCopies: book.AvailableCopies,
		}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableBooks)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	if _, err := s.executeStatement(ctx, tableBooks, sqlQuery); err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateISBN
		}

		return err
	}

	return nil
}

// GetBookByID fetches one catalog record by id.
func (s Store) GetBookByID(ctx context.Context, id uuid.UUID) (core.Book, error) {
	return s.getBook(ctx, goqu.Ex{colBookID: id.String()})
}

// GetBookByISBN fetches one catalog record by ISBN.
func (s Store) GetBookByISBN(ctx context.Context, isbn string) (core.Book, error) {
	return s.getBook(ctx, goqu.Ex{colBookISBN: isbn})
}

func (s Store) getBook(ctx context.Context, where goqu.Ex) (core.Book, error) {
	books, err := s.listBooks(ctx, where)
	if err != nil {
		return core.Book{}, err
	}

	if len(books) == 0 {
		return core.Book{}, core.ErrBookNotFound
	}

	return books[0], nil
}

// ListBooks returns all catalog records ordered by title.
func (s Store) ListBooks(ctx context.Context) ([]core.Book, error) {
	return s.listBooks(ctx, nil)
}

func (s Store) listBooks(ctx context.Context, where goqu.Ex) ([]core.Book, error) {
	selectStmt := s.builder().
		From(s.tableName(tableBooks)).
		Select(colBookID, colBookTitle, colBookAuthor, colBookGenre, colBookISBN, colBookYear, colAvailableCopies).
		Order(goqu.I(colBookTitle).Asc())

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableBooks)
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, tableBooks, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	return s.scanBooks(ctx, rows)
}

func (s Store) scanBooks(ctx context.Context, rows adapters.DBRows) ([]core.Book, error) {
	books := make([]core.Book, 0)

	for rows.Next() {
		var (
			idRaw  string
			book   core.Book
			rawErr error
		)

		if rawErr = rows.Scan(&idRaw, &book.Title, &book.Author, &book.Genre, &book.ISBN, &book.YearPublished, &book.AvailableCopies); rawErr != nil {
			s.logError(ctx, logMsgScanRowFailed, rawErr, logAttrTable, tableBooks)
			return nil, errors.Join(ErrScanningRowFailed, rawErr)
		}

		id, parseErr := uuid.Parse(idRaw)
		if parseErr != nil {
			s.logError(ctx, logMsgScanRowFailed, parseErr, logAttrTable, tableBooks)
			return nil, errors.Join(ErrScanningRowFailed, parseErr)
		}

		book.ID = id
		books = append(books, book)
	}

	return books, nil
}

// UpdateBook overwrites a catalog record's attributes.
func (s Store) UpdateBook(ctx context.Context, book core.Book) error {
	sqlQuery, _, toSQLErr := s.builder().
		Update(s.tableName(tableBooks)).
		Set(goqu.Record{
			colBookTitle:       book.Title,
			colBookAuthor:      book.Author,
			colBookGenre:       book.Genre,
			colBookISBN:        book.ISBN,
			colBookYear:        book.YearPublished,
			colAvailableCopies: book.AvailableCopies,
		}).
		Where(goqu.Ex{colBookID: book.ID.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableBooks)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableBooks, sqlQuery)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrDuplicateISBN
		}

		return err
	}

	if rowsAffected == 0 {
		return core.ErrBookNotFound
	}

	return nil
}

// AdjustAvailableCopies changes a book's available copy count by delta.
// The statement refuses any adjustment that would make the count negative.
func (s Store) AdjustAvailableCopies(ctx context.Context, id uuid.UUID, delta int) error {
	sqlQuery, _, toSQLErr := s.builder().
		Update(s.tableName(tableBooks)).
		Set(goqu.Record{
			colAvailableCopies: goqu.L(colAvailableCopies+" + ?", delta),
		}).
		Where(
			goqu.Ex{colBookID: id.String()},
			goqu.L(colAvailableCopies+" + ? >= 0", delta),
		).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableBooks)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableBooks, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		if delta < 0 {
			return core.ErrBookUnavailable
		}

		return core.ErrBookNotFound
	}

	return nil
}

// DeleteBook removes a catalog record.
func (s Store) DeleteBook(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := s.builder().
		Delete(s.tableName(tableBooks)).
		Where(goqu.Ex{colBookID: id.String()}).
		ToSQL()

	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrTable, tableBooks)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, err := s.executeStatement(ctx, tableBooks, sqlQuery)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return core.ErrBookNotFound
	}

	return nil
}
