package removefine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetFineByID(ctx context.Context, id uuid.UUID) (core.Fine, error)
	DeleteFine(ctx context.Context, id uuid.UUID) error
}

// CommandHandler orchestrates the deletion workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the deletion workflow.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	var s state

	fine, lookupErr := h.store.GetFineByID(ctx, command.FineID)
	switch {
	case lookupErr == nil:
		s.fine = fine
		s.fineFound = true
	case errors.Is(lookupErr, core.ErrFineNotFound):
		// decided below
	default:
		return lookupErr
	}

	if decideErr := Decide(s, command); decideErr != nil {
		return decideErr
	}

	return h.store.DeleteFine(ctx, command.FineID)
}
