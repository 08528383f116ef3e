package sweepoverduefines

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]core.BorrowingTransaction, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	InsertFine(ctx context.Context, fine core.Fine) error
	UpdateMemberStatus(ctx context.Context, id uuid.UUID, status core.MembershipStatus) error
	InsertNotification(ctx context.Context, notification core.Notification) error
}

// Result summarizes one sweep run.
type Result struct {
	OverdueLoans      int
	FinesApplied      int
	DuplicatesSkipped int
	MembersSuspended  int
}

// CommandHandler runs the overdue-fine sweep.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes one sweep run. The first store failure aborts the run; the
// effects applied up to that point stay in place.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, error) {
	overdue, listErr := h.store.ListOverdueTransactions(ctx, command.OccurredAt)
	if listErr != nil {
		return Result{}, listErr
	}

	result := Result{OverdueLoans: len(overdue)}

	for _, transaction := range overdue {
		if err := h.sweepLoan(ctx, transaction, command, &result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (h CommandHandler) sweepLoan(
	ctx context.Context,
	transaction core.BorrowingTransaction,
	command Command,
	result *Result,
) error {

	member, memberErr := h.store.GetMemberByID(ctx, transaction.MemberID)
	if memberErr != nil {
		return memberErr
	}

	fines, finesErr := h.store.ListFinesByMember(ctx, transaction.MemberID)
	if finesErr != nil {
		return finesErr
	}

	decision := decideLoan(loanState{
		transaction: transaction,
		member:      member,
		memberFines: fines,
	}, command.OccurredAt)

	if decision.fineIsDuplicate {
		result.DuplicatesSkipped++
	}

	if decision.hasFineToRecord() {
		fine := core.BuildFine(uuid.New(), transaction.MemberID, decision.fineAmount, core.FinePending, command.OccurredAt)
		if err := h.store.InsertFine(ctx, fine); err != nil {
			return err
		}

		notification := core.BuildNotification(
			uuid.New(),
			transaction.MemberID,
			core.SweepFineMessage(decision.fineAmount),
			command.OccurredAt,
		)
		if err := h.store.InsertNotification(ctx, notification); err != nil {
			return err
		}

		result.FinesApplied++
	}

	if decision.suspendMember {
		if err := h.store.UpdateMemberStatus(ctx, transaction.MemberID, core.MembershipSuspended); err != nil {
			return err
		}

		notification := core.BuildNotification(
			uuid.New(),
			transaction.MemberID,
			core.StatusChangedMessage(core.MembershipSuspended),
			command.OccurredAt,
		)
		if err := h.store.InsertNotification(ctx, notification); err != nil {
			return err
		}

		result.MembersSuspended++
	}

	return nil
}
