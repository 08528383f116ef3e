package addfine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	InsertFine(ctx context.Context, fine core.Fine) error
	UpdateFine(ctx context.Context, fine core.Fine) error
}

// CommandHandler orchestrates the add-fine workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the add-fine workflow and returns the resulting fine.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Fine, error) {
	var s state

	_, lookupErr := h.store.GetMemberByID(ctx, command.MemberID)
	switch {
	case lookupErr == nil:
		s.memberFound = true
	case errors.Is(lookupErr, core.ErrMemberNotFound):
		// decided below
	default:
		return core.Fine{}, lookupErr
	}

	if s.memberFound {
		fines, finesErr := h.store.ListFinesByMember(ctx, command.MemberID)
		if finesErr != nil {
			return core.Fine{}, finesErr
		}
		s.fines = fines
	}

	decision, decideErr := Decide(s, command)
	if decideErr != nil {
		return core.Fine{}, decideErr
	}

	if decision.TopUpExisting {
		updated := decision.Existing
		updated.Amount = decision.Amount

		if err := h.store.UpdateFine(ctx, updated); err != nil {
			return core.Fine{}, err
		}

		return updated, nil
	}

	fine := core.BuildFine(uuid.New(), command.MemberID, decision.Amount, core.FinePending, command.OccurredAt)

	if err := h.store.InsertFine(ctx, fine); err != nil {
		return core.Fine{}, err
	}

	return fine, nil
}
