package evaluatememberships

import (
	"context"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	ListMembers(ctx context.Context) ([]core.Member, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	ListTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error)
	UpdateMemberStatus(ctx context.Context, id uuid.UUID, status core.MembershipStatus) error
	InsertNotification(ctx context.Context, notification core.Notification) error
}

// Result summarizes one membership sweep run.
type Result struct {
	MembersEvaluated int
	StatusChanges    int
}

// CommandHandler runs the membership status sweep.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes one sweep run. The first store failure aborts the run; the
// transitions applied up to that point stay in place.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, error) {
	members, listErr := h.store.ListMembers(ctx)
	if listErr != nil {
		return Result{}, listErr
	}

	result := Result{MembersEvaluated: len(members)}

	for _, member := range members {
		changed, err := h.evaluateMember(ctx, member, command)
		if err != nil {
			return result, err
		}

		if changed {
			result.StatusChanges++
		}
	}

	return result, nil
}

func (h CommandHandler) evaluateMember(ctx context.Context, member core.Member, command Command) (bool, error) {
	fines, finesErr := h.store.ListFinesByMember(ctx, member.ID)
	if finesErr != nil {
		return false, finesErr
	}

	transactions, txErr := h.store.ListTransactionsByMember(ctx, member.ID)
	if txErr != nil {
		return false, txErr
	}

	target := decideStatus(memberState{
		member:       member,
		fines:        fines,
		transactions: transactions,
	}, command.OccurredAt)

	if target == member.Status {
		return false, nil
	}

	if err := h.store.UpdateMemberStatus(ctx, member.ID, target); err != nil {
		return false, err
	}

	notification := core.BuildNotification(
		uuid.New(),
		member.ID,
		core.StatusChangedMessage(target),
		command.OccurredAt,
	)
	if err := h.store.InsertNotification(ctx, notification); err != nil {
		return false, err
	}

	return true, nil
}
