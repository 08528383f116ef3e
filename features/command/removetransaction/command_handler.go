package removetransaction

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetTransactionByID(ctx context.Context, id uuid.UUID) (core.BorrowingTransaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
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

	transaction, lookupErr := h.store.GetTransactionByID(ctx, command.TransactionID)
	switch {
	case lookupErr == nil:
		s.transaction = transaction
		s.transactionFound = true
	case errors.Is(lookupErr, core.ErrTransactionNotFoundOrReturned):
		// decided below
	default:
		return lookupErr
	}

	if decideErr := Decide(s, command); decideErr != nil {
		return decideErr
	}

	return h.store.DeleteTransaction(ctx, command.TransactionID)
}
