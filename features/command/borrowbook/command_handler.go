package borrowbook

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (core.Book, error)
	ListOutstandingTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error)
	AdjustAvailableCopies(ctx context.Context, id uuid.UUID, delta int) error
	InsertTransaction(ctx context.Context, transaction core.BorrowingTransaction) error
}

// CommandHandler orchestrates the borrow workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the borrow workflow and returns the recorded transaction.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BorrowingTransaction, error) {
	s, err := h.loadState(ctx, command)
	if err != nil {
		return core.BorrowingTransaction{}, err
	}

	if decideErr := Decide(s, command); decideErr != nil {
		return core.BorrowingTransaction{}, decideErr
	}

	// The storage guard re-checks the copy count, so a concurrent borrow of
	// the last copy fails here instead of going negative.
	if adjustErr := h.store.AdjustAvailableCopies(ctx, command.BookID, -1); adjustErr != nil {
		return core.BorrowingTransaction{}, adjustErr
	}

	transaction := core.BuildBorrowingTransaction(uuid.New(), command.BookID, command.MemberID, command.OccurredAt)

	if insertErr := h.store.InsertTransaction(ctx, transaction); insertErr != nil {
		// Give the copy back; the borrow did not happen.
		if restoreErr := h.store.AdjustAvailableCopies(ctx, command.BookID, +1); restoreErr != nil {
			return core.BorrowingTransaction{}, errors.Join(insertErr, restoreErr)
		}

		return core.BorrowingTransaction{}, insertErr
	}

	return transaction, nil
}

func (h CommandHandler) loadState(ctx context.Context, command Command) (state, error) {
	var s state

	member, memberErr := h.store.GetMemberByID(ctx, command.MemberID)
	switch {
	case memberErr == nil:
		s.member = member
		s.memberFound = true
	case errors.Is(memberErr, core.ErrMemberNotFound):
		// decided below
	default:
		return state{}, memberErr
	}

	book, bookErr := h.store.GetBookByID(ctx, command.BookID)
	switch {
	case bookErr == nil:
		s.book = book
		s.bookFound = true
	case errors.Is(bookErr, core.ErrBookNotFound):
		// decided below
	default:
		return state{}, bookErr
	}

	openLoans, loansErr := h.store.ListOutstandingTransactionsByMember(ctx, command.MemberID)
	if loansErr != nil {
		return state{}, loansErr
	}
	s.openLoans = openLoans

	return s, nil
}
