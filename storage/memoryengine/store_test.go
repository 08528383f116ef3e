package memoryengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_Store_AdjustAvailableCopies_NeverGoesNegative(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()

	book := core.BuildBook(uuid.New(), "Title", "Author", "Genre", "978-0-000-00001-0", 2001, 1)
	require.NoError(t, store.InsertBook(ctx, book))
	require.NoError(t, store.AdjustAvailableCopies(ctx, book.ID, -1))

	// act
	err := store.AdjustAvailableCopies(ctx, book.ID, -1)

	// assert
	assert.ErrorIs(t, err, core.ErrBookUnavailable)

	stored, getErr := store.GetBookByID(ctx, book.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 0, stored.AvailableCopies)
}

func Test_Store_InsertBook_RejectsDuplicateISBN(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()

	first := core.BuildBook(uuid.New(), "Title", "Author", "Genre", "978-0-000-00001-0", 2001, 1)
	require.NoError(t, store.InsertBook(ctx, first))

	// act
	second := core.BuildBook(uuid.New(), "Other Title", "Other Author", "Genre", "978-0-000-00001-0", 2002, 1)
	err := store.InsertBook(ctx, second)

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateISBN)
}

func Test_Store_InsertMember_RejectsDuplicateEmail_CaseInsensitive(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()

	first := core.BuildMember(uuid.New(), "Asha Rao", "asha@example.com", "", "")
	require.NoError(t, store.InsertMember(ctx, first))

	// act
	second := core.BuildMember(uuid.New(), "Other Person", "ASHA@Example.COM", "", "")
	err := store.InsertMember(ctx, second)

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateEmail)
}

func Test_Store_InsertTransaction_OneOpenLoanPerMemberAndBook(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()

	bookID := uuid.New()
	memberID := uuid.New()

	first := core.BuildBorrowingTransaction(uuid.New(), bookID, memberID, time.Now())
	require.NoError(t, store.InsertTransaction(ctx, first))

	// act
	second := core.BuildBorrowingTransaction(uuid.New(), bookID, memberID, time.Now())
	err := store.InsertTransaction(ctx, second)

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyBorrowed)
}

func Test_Store_InsertTransaction_SameBookAgain_AfterReturn(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()

	bookID := uuid.New()
	memberID := uuid.New()

	first := core.BuildBorrowingTransaction(uuid.New(), bookID, memberID, time.Now())
	require.NoError(t, store.InsertTransaction(ctx, first))
	require.NoError(t, store.MarkTransactionReturned(ctx, first.ID, time.Now()))

	// act
	second := core.BuildBorrowingTransaction(uuid.New(), bookID, memberID, time.Now())
	err := store.InsertTransaction(ctx, second)

	// assert
	assert.NoError(t, err)
}

func Test_Store_MarkTransactionReturned_RejectsSecondReturn(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()

	loan := core.BuildBorrowingTransaction(uuid.New(), uuid.New(), uuid.New(), time.Now())
	require.NoError(t, store.InsertTransaction(ctx, loan))
	require.NoError(t, store.MarkTransactionReturned(ctx, loan.ID, time.Now()))

	// act
	err := store.MarkTransactionReturned(ctx, loan.ID, time.Now())

	// assert
	assert.ErrorIs(t, err, core.ErrTransactionNotFoundOrReturned)
}

func Test_Store_ListOverdueTransactions_FiltersByDueDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	overdue := core.BuildBorrowingTransaction(uuid.New(), uuid.New(), uuid.New(), now.AddDate(0, 0, -20))
	require.NoError(t, store.InsertTransaction(ctx, overdue))

	onTime := core.BuildBorrowingTransaction(uuid.New(), uuid.New(), uuid.New(), now.AddDate(0, 0, -3))
	require.NoError(t, store.InsertTransaction(ctx, onTime))

	// act
	listed, err := store.ListOverdueTransactions(ctx, now)

	// assert
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, overdue.ID, listed[0].ID)
}

func Test_Store_ListFinesByMember_KeepsInsertionOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	memberID := uuid.New()

	first := core.BuildFine(uuid.New(), memberID, 100, core.FinePending, time.Now())
	second := core.BuildFine(uuid.New(), memberID, 50, core.FinePending, time.Now())
	require.NoError(t, store.InsertFine(ctx, first))
	require.NoError(t, store.InsertFine(ctx, second))

	// act
	listed, err := store.ListFinesByMember(ctx, memberID)

	// assert
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func Test_Store_DeleteBook_UnknownID_ReportsNotFound(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()

	// act
	err := store.DeleteBook(context.Background(), uuid.New())

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}
