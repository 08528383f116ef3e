package registermember_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/registermember"
	"github.com/openshelf/circulation-go/storage/memoryengine"
)

func Test_RegisterMember_NewMembersStartActive(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	handler := registermember.NewCommandHandler(store)

	// act
	member, err := handler.Handle(ctx, registermember.BuildCommand(
		"Asha Rao", "asha@example.com", "555-0100", "1 Library Lane"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.MembershipActive, member.Status)

	stored, err := store.GetMemberByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, member.ID, stored.ID)
}

func Test_RegisterMember_Fails_OnDuplicateEmail(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memoryengine.NewStore()
	handler := registermember.NewCommandHandler(store)

	_, firstErr := handler.Handle(ctx, registermember.BuildCommand(
		"Asha Rao", "asha@example.com", "555-0100", "1 Library Lane"))
	require.NoError(t, firstErr)

	// act
	_, err := handler.Handle(ctx, registermember.BuildCommand(
		"Another Person", "asha@example.com", "555-0200", "2 Library Lane"))

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateEmail)
}

func Test_RegisterMember_Fails_OnMissingFields(t *testing.T) {
	// arrange
	store := memoryengine.NewStore()
	handler := registermember.NewCommandHandler(store)

	// act + assert
	_, err := handler.Handle(context.Background(), registermember.BuildCommand("", "asha@example.com", "", ""))
	assert.ErrorIs(t, err, core.ErrMissingField)

	_, err = handler.Handle(context.Background(), registermember.BuildCommand("Asha Rao", "", "", ""))
	assert.ErrorIs(t, err, core.ErrMissingField)
}
