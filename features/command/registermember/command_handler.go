package registermember

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetMemberByEmail(ctx context.Context, email string) (core.Member, error)
	InsertMember(ctx context.Context, member core.Member) error
}

// CommandHandler orchestrates the registration workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the registration workflow and returns the new member account.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Member, error) {
	var s state

	_, lookupErr := h.store.GetMemberByEmail(ctx, command.Email)
	switch {
	case lookupErr == nil:
		s.emailTaken = true
	case errors.Is(lookupErr, core.ErrMemberNotFound):
		// decided below
	default:
		return core.Member{}, lookupErr
	}

	if decideErr := Decide(s, command); decideErr != nil {
		return core.Member{}, decideErr
	}

	member := core.BuildMember(uuid.New(), command.Name, command.Email, command.Phone, command.Address)

	// The unique index on the email backstops the check above under
	// concurrent registration.
	if err := h.store.InsertMember(ctx, member); err != nil {
		return core.Member{}, err
	}

	return member, nil
}
