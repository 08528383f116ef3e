package removebook

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetBookByID(ctx context.Context, id uuid.UUID) (core.Book, error)
	ListOutstandingTransactionsByBook(ctx context.Context, bookID uuid.UUID) ([]core.BorrowingTransaction, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
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

	_, lookupErr := h.store.GetBookByID(ctx, command.BookID)
	switch {
	case lookupErr == nil:
		s.bookFound = true
	case errors.Is(lookupErr, core.ErrBookNotFound):
		// decided below
	default:
		return lookupErr
	}

	openLoans, loansErr := h.store.ListOutstandingTransactionsByBook(ctx, command.BookID)
	if loansErr != nil {
		return loansErr
	}
	s.openLoans = openLoans

	if decideErr := Decide(s, command); decideErr != nil {
		return decideErr
	}

	return h.store.DeleteBook(ctx, command.BookID)
}
