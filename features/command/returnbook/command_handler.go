package returnbook

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetTransactionByID(ctx context.Context, id uuid.UUID) (core.BorrowingTransaction, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (core.Book, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	InsertFine(ctx context.Context, fine core.Fine) error
	UpdateMemberStatus(ctx context.Context, id uuid.UUID, status core.MembershipStatus) error
	MarkTransactionReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error
	AdjustAvailableCopies(ctx context.Context, id uuid.UUID, delta int) error
	InsertNotification(ctx context.Context, notification core.Notification) error
}

// CommandHandler orchestrates the return workflow: Load -> Decide -> Apply.
//
// Effects are applied in a fixed order: record the fine, suspend the member,
// close the transaction, restore the copy, record the notifications. The
// effects are not transactional; a failure part-way leaves the earlier
// effects in place.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the return workflow and returns the decision that was applied.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Decision, error) {
	s, loadErr := h.loadState(ctx, command)
	if loadErr != nil {
		return Decision{}, loadErr
	}

	decision, decideErr := Decide(s, command)
	if decideErr != nil {
		return Decision{}, decideErr
	}

	if decision.HasFineToRecord() {
		fine := core.BuildFine(uuid.New(), s.transaction.MemberID, decision.FineAmount, core.FinePending, command.OccurredAt)
		if err := h.store.InsertFine(ctx, fine); err != nil {
			return Decision{}, err
		}
	}

	if decision.SuspendMember && s.member.Status != core.MembershipSuspended {
		if err := h.store.UpdateMemberStatus(ctx, s.transaction.MemberID, core.MembershipSuspended); err != nil {
			return Decision{}, err
		}
	}

	if err := h.store.MarkTransactionReturned(ctx, command.TransactionID, command.OccurredAt); err != nil {
		return Decision{}, err
	}

	if err := h.store.AdjustAvailableCopies(ctx, s.transaction.BookID, +1); err != nil {
		return Decision{}, err
	}

	if notifyErr := h.notify(ctx, s, decision, command); notifyErr != nil {
		return Decision{}, notifyErr
	}

	return decision, nil
}

func (h CommandHandler) notify(ctx context.Context, s state, decision Decision, command Command) error {
	if decision.HasFineToRecord() {
		book, bookErr := h.store.GetBookByID(ctx, s.transaction.BookID)
		if bookErr != nil {
			return bookErr
		}

		notification := core.BuildNotification(
			uuid.New(),
			s.transaction.MemberID,
			core.OverdueFineMessage(book.Title, decision.FineAmount),
			command.OccurredAt,
		)
		if err := h.store.InsertNotification(ctx, notification); err != nil {
			return err
		}
	}

	if decision.SuspendMember && s.member.Status != core.MembershipSuspended {
		notification := core.BuildNotification(
			uuid.New(),
			s.transaction.MemberID,
			core.StatusChangedMessage(core.MembershipSuspended),
			command.OccurredAt,
		)
		if err := h.store.InsertNotification(ctx, notification); err != nil {
			return err
		}
	}

	return nil
}

func (h CommandHandler) loadState(ctx context.Context, command Command) (state, error) {
	var s state

	transaction, txErr := h.store.GetTransactionByID(ctx, command.TransactionID)
	switch {
	case txErr == nil:
		s.transaction = transaction
		s.transactionFound = true
	case errors.Is(txErr, core.ErrTransactionNotFoundOrReturned):
		return s, nil // decided as not found
	default:
		return state{}, txErr
	}

	member, memberErr := h.store.GetMemberByID(ctx, transaction.MemberID)
	if memberErr != nil {
		return state{}, memberErr
	}
	s.member = member

	fines, finesErr := h.store.ListFinesByMember(ctx, transaction.MemberID)
	if finesErr != nil {
		return state{}, finesErr
	}
	s.memberFines = fines

	return s, nil
}
