package evaluatememberships_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/evaluatememberships"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_EvaluateMemberships_StalePendingFine_SuspendsMember(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenMember(t, store, "stale@example.com")
	givenLoan(t, store, member.ID, now.AddDate(0, 0, -10))

	stale := core.BuildFine(uuid.New(), member.ID, 150, core.FinePending, now.AddDate(0, 0, -40))
	require.NoError(t, store.InsertFine(ctx, stale))

	handler := evaluatememberships.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, evaluatememberships.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.MembersEvaluated)
	assert.Equal(t, 1, result.StatusChanges)

	updated, err := store.GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, core.MembershipSuspended, updated.Status)

	notifications, err := store.ListNotificationsByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Suspended")
}

func Test_EvaluateMemberships_AllFinesPaid_ReinstatesSuspendedMember(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenMember(t, store, "cleared@example.com")
	require.NoError(t, store.UpdateMemberStatus(ctx, member.ID, core.MembershipSuspended))
	givenLoan(t, store, member.ID, now.AddDate(0, 0, -10))

	paid := core.BuildFine(uuid.New(), member.ID, 500, core.FinePaid, now.AddDate(0, 0, -40))
	require.NoError(t, store.InsertFine(ctx, paid))

	handler := evaluatememberships.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, evaluatememberships.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.StatusChanges)

	updated, err := store.GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, core.MembershipActive, updated.Status)
}

func Test_EvaluateMemberships_NoBorrowInAYear_MarksInactive(t *testing.T) {
	// arrange - the inactivity rule overrides the fine-based rules
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenMember(t, store, "dormant@example.com")
	loan := givenLoan(t, store, member.ID, now.AddDate(0, 0, -400))
	require.NoError(t, store.MarkTransactionReturned(ctx, loan.ID, now.AddDate(0, 0, -390)))

	stale := core.BuildFine(uuid.New(), member.ID, 150, core.FinePending, now.AddDate(0, 0, -40))
	require.NoError(t, store.InsertFine(ctx, stale))

	handler := evaluatememberships.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, evaluatememberships.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.StatusChanges)

	updated, err := store.GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, core.MembershipInactive, updated.Status)
}

func Test_EvaluateMemberships_NoBorrowHistoryAtAll_MarksInactive(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenMember(t, store, "fresh-but-idle@example.com")

	handler := evaluatememberships.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, evaluatememberships.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.StatusChanges)

	updated, err := store.GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, core.MembershipInactive, updated.Status)
}

func Test_EvaluateMemberships_UnchangedStatus_LeavesNoTrace(t *testing.T) {
	// arrange - active member with a recent borrow and no fines
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenMember(t, store, "steady@example.com")
	givenLoan(t, store, member.ID, now.AddDate(0, 0, -5))

	handler := evaluatememberships.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, evaluatememberships.BuildCommand(now))

	// assert - no transition, no notification
	require.NoError(t, err)
	assert.Equal(t, 1, result.MembersEvaluated)
	assert.Equal(t, 0, result.StatusChanges)

	notifications, err := store.ListNotificationsByMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func Test_EvaluateMemberships_RecentPendingFine_KeepsMemberActive(t *testing.T) {
	// arrange - a Pending fine younger than 30 days is not grounds for suspension
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	member := givenMember(t, store, "recent-fine@example.com")
	givenLoan(t, store, member.ID, now.AddDate(0, 0, -10))

	recent := core.BuildFine(uuid.New(), member.ID, 100, core.FinePending, now.AddDate(0, 0, -5))
	require.NoError(t, store.InsertFine(ctx, recent))

	handler := evaluatememberships.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, evaluatememberships.BuildCommand(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.StatusChanges)

	updated, err := store.GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, core.MembershipActive, updated.Status)
}

func givenMember(t *testing.T, store *memoryengine.Store, email string) core.Member {
	t.Helper()

	member := core.BuildMember(uuid.New(), "Reader", email, "555-0100", "1 Library Lane")
	require.NoError(t, store.InsertMember(context.Background(), member))

	return member
}

func givenLoan(t *testing.T, store *memoryengine.Store, memberID uuid.UUID, borrowedAt time.Time) core.BorrowingTransaction {
	t.Helper()

	loan := core.BuildBorrowingTransaction(uuid.New(), uuid.New(), memberID, borrowedAt)
	require.NoError(t, store.InsertTransaction(context.Background(), loan))

	return loan
}
