package sweepoverduefines_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/sweepoverduefines"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_SweepOverdueFines_AppliesFinesToOverdueLoans(t *testing.T) {
	// arrange - one loan 20 days overdue, one loan still within the period
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	overdueMember := givenActiveMember(t, store, "overdue@example.com")
	givenOpenLoan(t, store, overdueMember.ID, now.AddDate(0, 0, -(core.LoanPeriodDays+20)))

	onTimeMember := givenActiveMember(t, store, "ontime@example.com")
	givenOpenLoan(t, store, onTimeMember.ID, now.AddDate(0, 0, -3))

	handler := sweepoverduefines.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, sweepoverduefines.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.OverdueLoans)
	assert.Equal(t, 1, result.FinesApplied)
	assert.Equal(t, 0, result.DuplicatesSkipped)
	assert.Equal(t, 0, result.MembersSuspended)

	fines, err := store.ListFinesByMember(ctx, overdueMember.ID)
	require.NoError(t, err)
	require.Len(t, fines, 1)
	assert.Equal(t, core.Rupees(200), fines[0].Amount)
	assert.Equal(t, core.FinePending, fines[0].Status)

	notifications, err := store.ListNotificationsByMember(ctx, overdueMember.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "₹200")

	onTimeFines, err := store.ListFinesByMember(ctx, onTimeMember.ID)
	require.NoError(t, err)
	assert.Empty(t, onTimeFines)
}

func Test_SweepOverdueFines_PastThirtyDays_AddsSurchargeAndSuspends(t *testing.T) {
	// arrange - 35 days overdue: 300 capped base plus the 200 surcharge
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenActiveMember(t, store, "late@example.com")
	givenOpenLoan(t, store, member.ID, now.AddDate(0, 0, -(core.LoanPeriodDays+35)))

	handler := sweepoverduefines.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, sweepoverduefines.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.FinesApplied)
	assert.Equal(t, 1, result.MembersSuspended)

	fines, err := store.ListFinesByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, fines, 1)
	assert.Equal(t, core.Rupees(500), fines[0].Amount)

	suspended, err := store.GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, core.MembershipSuspended, suspended.Status)

	notifications, err := store.ListNotificationsByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func Test_SweepOverdueFines_SkipsDuplicatePendingFine(t *testing.T) {
	// arrange - a Pending fine with the same amount already exists
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenActiveMember(t, store, "swept@example.com")
	givenOpenLoan(t, store, member.ID, now.AddDate(0, 0, -(core.LoanPeriodDays+20)))

	existing := core.BuildFine(uuid.New(), member.ID, 200, core.FinePending, now.AddDate(0, 0, -7))
	require.NoError(t, store.InsertFine(ctx, existing))

	handler := sweepoverduefines.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, sweepoverduefines.BuildCommand(now))

	// assert - no second fine, no notification
	require.NoError(t, err)
	assert.Equal(t, 1, result.OverdueLoans)
	assert.Equal(t, 0, result.FinesApplied)
	assert.Equal(t, 1, result.DuplicatesSkipped)

	fines, err := store.ListFinesByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, fines, 1)

	notifications, err := store.ListNotificationsByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func Test_SweepOverdueFines_PaidFineWithSameAmount_IsNotADuplicate(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenActiveMember(t, store, "repeat@example.com")
	givenOpenLoan(t, store, member.ID, now.AddDate(0, 0, -(core.LoanPeriodDays+20)))

	paid := core.BuildFine(uuid.New(), member.ID, 200, core.FinePaid, now.AddDate(0, 0, -60))
	require.NoError(t, store.InsertFine(ctx, paid))

	handler := sweepoverduefines.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, sweepoverduefines.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.FinesApplied)
	assert.Equal(t, 0, result.DuplicatesSkipped)

	fines, err := store.ListFinesByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, fines, 2)
}

func Test_SweepOverdueFines_AlreadySuspendedMember_IsNotSuspendedAgain(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenActiveMember(t, store, "suspended@example.com")
	require.NoError(t, store.UpdateMemberStatus(ctx, member.ID, core.MembershipSuspended))
	givenOpenLoan(t, store, member.ID, now.AddDate(0, 0, -(core.LoanPeriodDays+35)))

	handler := sweepoverduefines.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, sweepoverduefines.BuildCommand(now))

	// assert - fine lands, no duplicate suspension notification
	require.NoError(t, err)
	assert.Equal(t, 1, result.FinesApplied)
	assert.Equal(t, 0, result.MembersSuspended)

	notifications, err := store.ListNotificationsByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func Test_SweepOverdueFines_EmptyStore_ReportsNothing(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()
	handler := sweepoverduefines.NewCommandHandler(store)

	// act
	result, err := handler.Handle(context.Background(), sweepoverduefines.BuildCommand(time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, sweepoverduefines.Result{}, result)
}

func givenActiveMember(t *testing.T, store *memoryengine.Store, email string) core.Member {
	t.Helper()

	member := core.BuildMember(uuid.New(), "Reader", email, "555-0100", "1 Library Lane")
	require.NoError(t, store.InsertMember(context.Background(), member))

	return member
}

func givenOpenLoan(t *testing.T, store *memoryengine.Store, memberID uuid.UUID, borrowedAt time.Time) core.BorrowingTransaction {
	t.Helper()

	loan := core.BuildBorrowingTransaction(uuid.New(), uuid.New(), memberID, borrowedAt)
	require.NoError(t, store.InsertTransaction(context.Background(), loan))

	return loan
}
