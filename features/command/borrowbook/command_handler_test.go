package borrowbook_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/borrowbook"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_Borrow_Success_DecrementsCopiesAndRecordsTransaction(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Now()

	member := givenActiveMember(t, store)
	book := givenBook(t, store, 2)

	handler := borrowbook.NewCommandHandler(store)

	// act
	transaction, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, member.ID, now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, book.ID, transaction.BookID)
	assert.Equal(t, member.ID, transaction.MemberID)
	assert.Equal(t, core.TransactionBorrowed, transaction.Status)
	assert.True(t, core.IsNoReturnDate(transaction.ReturnDate))

	stored, err := store.GetBookByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableCopies)
}

func Test_Borrow_Fails_WhenMemberMissing(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	book := givenBook(t, store, 1)

	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, uuid.New(), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrMemberNotActiveOrMissing)
}

func Test_Borrow_Fails_WhenMemberSuspended(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	member := givenActiveMember(t, store)
	book := givenBook(t, store, 1)

	require.NoError(t, store.UpdateMemberStatus(ctx, member.ID, core.MembershipSuspended))

	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, member.ID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrMemberNotActiveOrMissing)
}

func Test_Borrow_Fails_WhenMemberHasOverdueLoan(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Now()

	member := givenActiveMember(t, store)
	book := givenBook(t, store, 1)
	overdueBook := givenBook(t, store, 1)
	givenOpenLoan(t, store, member.ID, overdueBook.ID, now.AddDate(0, 0, -20))

	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, member.ID, now))

	// assert
	assert.ErrorIs(t, err, core.ErrMemberHasOverdueLoan)
}

func Test_Borrow_Fails_OnSixthOpenLoan(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Now()

	member := givenActiveMember(t, store)
	for i := 0; i < 5; i++ {
		other := givenBook(t, store, 1)
		givenOpenLoan(t, store, member.ID, other.ID, now.AddDate(0, 0, -1))
	}
	book := givenBook(t, store, 1)

	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, member.ID, now))

	// assert
	assert.ErrorIs(t, err, core.ErrBorrowLimitReached)
}

func Test_Borrow_Fails_WhenNoCopyAvailable(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	member := givenActiveMember(t, store)
	book := givenBook(t, store, 0)

	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, member.ID, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrBookUnavailable)
}

func Test_Borrow_Fails_WhenMemberAlreadyHoldsTheBook(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Now()

	member := givenActiveMember(t, store)
	book := givenBook(t, store, 3)
	givenOpenLoan(t, store, member.ID, book.ID, now.AddDate(0, 0, -1))

	handler := borrowbook.NewCommandHandler(store)

	// act
	_, err := handler.Handle(ctx, borrowbook.BuildCommand(book.ID, member.ID, now))

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyBorrowed)
}

var memberSeq int

func givenActiveMember(t *testing.T, store *memoryengine.Store) core.Member {
	t.Helper()

	memberSeq++
	member := core.BuildMember(
		uuid.New(),
		fmt.Sprintf("Reader %d", memberSeq),
		fmt.Sprintf("reader%d@example.com", memberSeq),
		"555-0100",
		"1 Library Lane",
	)
	require.NoError(t, store.InsertMember(context.Background(), member))

	return member
}

var bookSeq int

func givenBook(t *testing.T, store *memoryengine.Store, copies int) core.Book {
	t.Helper()

	bookSeq++
	book := core.BuildBook(
		uuid.New(),
		fmt.Sprintf("Title %d", bookSeq),
		"Some Author",
		"Fiction",
		fmt.Sprintf("978-0-000-%05d-0", bookSeq),
		2001,
		copies,
	)
	require.NoError(t, store.InsertBook(context.Background(), book))

	return book
}

func givenOpenLoan(
	t *testing.T,
	store *memoryengine.Store,
	memberID uuid.UUID,
	bookID uuid.UUID,
	borrowedAt time.Time,
) core.BorrowingTransaction {

	t.Helper()

	transaction := core.BuildBorrowingTransaction(uuid.New(), bookID, memberID, borrowedAt)
	require.NoError(t, store.InsertTransaction(context.Background(), transaction))

	return transaction
}
