package payfine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/payfine"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_PayFine_Success_MarksPaidAndNotifiesOnce(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	now := time.Now()

	member := givenMember(t, store)
	fine := givenPendingFine(t, store, member.ID, 200)

	handler := payfine.NewCommandHandler(store)

	// act
	paid, err := handler.Handle(ctx, payfine.BuildCommand(fine.ID, 200, now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.FinePaid, paid.Status)

	stored, err := store.GetFineByID(ctx, fine.ID)
	require.NoError(t, err)
	assert.Equal(t, core.FinePaid, stored.Status)

	notifications, err := store.ListNotificationsByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "₹200")
}

func Test_PayFine_Fails_OnAmountMismatch(t *testing.T) {
	testCases := []struct {
		name   string
		amount core.Rupees
	}{
		{name: "partial payment", amount: 150},
		{name: "excess payment", amount: 250},
		{name: "zero payment", amount: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			ctx := context.Background()
			store := memoryengine.NewStore()
			member := givenMember(t, store)
			fine := givenPendingFine(t, store, member.ID, 200)

			handler := payfine.NewCommandHandler(store)

			// act
			_, err := handler.Handle(ctx, payfine.BuildCommand(fine.ID, tc.amount, time.Now()))

			// assert - the fine stays Pending and nothing is recorded
			assert.ErrorIs(t, err, core.ErrPaymentAmountMismatch)

			stored, getErr := store.GetFineByID(ctx, fine.ID)
			require.NoError(t, getErr)
			assert.Equal(t, core.FinePending, stored.Status)

			notifications, listErr := store.ListNotificationsByMember(ctx, member.ID)
			require.NoError(t, listErr)
			assert.Empty(t, notifications)
		})
	}
}

func Test_PayFine_Fails_WhenAlreadyPaid(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	member := givenMember(t, store)
	fine := givenPendingFine(t, store, member.ID, 100)

	handler := payfine.NewCommandHandler(store)

	_, firstErr := handler.Handle(ctx, payfine.BuildCommand(fine.ID, 100, time.Now()))
	require.NoError(t, firstErr)

	// act
	_, err := handler.Handle(ctx, payfine.BuildCommand(fine.ID, 100, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrFineAlreadyPaid)
}

func Test_PayFine_Fails_WhenFineUnknown(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()
	handler := payfine.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(), payfine.BuildCommand(uuid.New(), 100, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrFineNotFound)
}

func givenMember(t *testing.T, store *memoryengine.Store) core.Member {
	t.Helper()

	member := core.BuildMember(uuid.New(), "Reader", "reader@example.com", "555-0100", "1 Library Lane")
	require.NoError(t, store.InsertMember(context.Background(), member))

	return member
}

func givenPendingFine(t *testing.T, store *memoryengine.Store, memberID uuid.UUID, amount core.Rupees) core.Fine {
	t.Helper()

	fine := core.BuildFine(uuid.New(), memberID, amount, core.FinePending, time.Now())
	require.NoError(t, store.InsertFine(context.Background(), fine))

	return fine
}
