package payfine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetFineByID(ctx context.Context, id uuid.UUID) (core.Fine, error)
	UpdateFine(ctx context.Context, fine core.Fine) error
	InsertNotification(ctx context.Context, notification core.Notification) error
}

// CommandHandler orchestrates the payment workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the payment workflow and returns the paid fine.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Fine, error) {
	var s state

	fine, lookupErr := h.store.GetFineByID(ctx, command.FineID)
	switch {
	case lookupErr == nil:
		s.fine = fine
		s.fineFound = true
	case errors.Is(lookupErr, core.ErrFineNotFound):
		// decided below
	default:
		return core.Fine{}, lookupErr
	}

	paid, decideErr := Decide(s, command)
	if decideErr != nil {
		return core.Fine{}, decideErr
	}

	if err := h.store.UpdateFine(ctx, paid); err != nil {
		return core.Fine{}, err
	}

	notification := core.BuildNotification(
		uuid.New(),
		paid.MemberID,
		core.FinePaidMessage(paid.Amount),
		command.OccurredAt,
	)
	if err := h.store.InsertNotification(ctx, notification); err != nil {
		return core.Fine{}, err
	}

	return paid, nil
}
