package updatemember

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	UpdateMember(ctx context.Context, member core.Member) error
}

// CommandHandler orchestrates the profile edit workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the profile edit workflow and returns the updated account.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Member, error) {
	var s state

	member, lookupErr := h.store.GetMemberByID(ctx, command.MemberID)
	switch {
	case lookupErr == nil:
		s.member = member
		s.memberFound = true
	case errors.Is(lookupErr, core.ErrMemberNotFound):
		// decided below
	default:
		return core.Member{}, lookupErr
	}

	updated, decideErr := Decide(s, command)
	if decideErr != nil {
		return core.Member{}, decideErr
	}

	if err := h.store.UpdateMember(ctx, updated); err != nil {
		return core.Member{}, err
	}

	return updated, nil
}
