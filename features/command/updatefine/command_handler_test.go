package updatefine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/updatefine"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_UpdateFine_OverwritesAmountStatusAndDate(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	fine := givenPendingFine(t, store, 100)

	newDate := time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC)
	handler := updatefine.NewCommandHandler(store)

	// act
	updated, err := handler.Handle(ctx, updatefine.BuildCommand(fine.ID, 1200, core.FinePaid, newDate))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.Rupees(1200), updated.Amount)
	assert.Equal(t, core.FinePaid, updated.Status)
	assert.Equal(t, core.ToOccurredAt(newDate), updated.TransactionDate)

	stored, err := store.GetFineByID(ctx, fine.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func Test_UpdateFine_CapsAtFiveThousand(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	fine := givenPendingFine(t, store, 100)

	handler := updatefine.NewCommandHandler(store)

	// act
	updated, err := handler.Handle(ctx, updatefine.BuildCommand(fine.ID, 9000, core.FinePending, fine.TransactionDate))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.Rupees(5000), updated.Amount)
}

func Test_UpdateFine_Fails_OnNonPositiveAmount(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()
	fine := givenPendingFine(t, store, 100)

	handler := updatefine.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(),
		updatefine.BuildCommand(fine.ID, -10, core.FinePending, fine.TransactionDate))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}

func Test_UpdateFine_Fails_OnUnknownStatus(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()
	fine := givenPendingFine(t, store, 100)

	handler := updatefine.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(),
		updatefine.BuildCommand(fine.ID, 100, core.FineStatus("Waived"), fine.TransactionDate))

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidStatus)
}

func Test_UpdateFine_Fails_WhenFineUnknown(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()
	handler := updatefine.NewCommandHandler(store)

	// act
	_, err := handler.Handle(context.Background(),
		updatefine.BuildCommand(uuid.New(), 100, core.FinePending, time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrFineNotFound)
}

func givenPendingFine(t *testing.T, store *memoryengine.Store, amount core.Rupees) core.Fine {
	t.Helper()

	fine := core.BuildFine(uuid.New(), uuid.New(), amount, core.FinePending, time.Now())
	require.NoError(t, store.InsertFine(context.Background(), fine))

	return fine
}
