package removemember

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	ListOutstandingTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

// CommandHandler orchestrates the removal workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the removal workflow.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	var s state

	_, lookupErr := h.store.GetMemberByID(ctx, command.MemberID)
	switch {
	case lookupErr == nil:
		s.memberFound = true
	case errors.Is(lookupErr, core.ErrMemberNotFound):
		// decided below
	default:
		return lookupErr
	}

	openLoans, loansErr := h.store.ListOutstandingTransactionsByMember(ctx, command.MemberID)
	if loansErr != nil {
		return loansErr
	}
	s.openLoans = openLoans

	fines, finesErr := h.store.ListFinesByMember(ctx, command.MemberID)
	if finesErr != nil {
		return finesErr
	}
	s.fines = fines

	if decideErr := Decide(s, command); decideErr != nil {
		return decideErr
	}

	return h.store.DeleteMember(ctx, command.MemberID)
}
