package memberactivity

import (
	"context"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	ListOutstandingTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	ListNotificationsByMember(ctx context.Context, memberID uuid.UUID) ([]core.Notification, error)
}

// QueryHandler orchestrates the query workflow: Load -> Project.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle executes the query and returns the member's activity view.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Activity, error) {
	member, memberErr := h.store.GetMemberByID(ctx, query.MemberID)
	if memberErr != nil {
		return Activity{}, memberErr
	}

	openLoans, loansErr := h.store.ListOutstandingTransactionsByMember(ctx, query.MemberID)
	if loansErr != nil {
		return Activity{}, loansErr
	}

	fines, finesErr := h.store.ListFinesByMember(ctx, query.MemberID)
	if finesErr != nil {
		return Activity{}, finesErr
	}

	notifications, notifyErr := h.store.ListNotificationsByMember(ctx, query.MemberID)
	if notifyErr != nil {
		return Activity{}, notifyErr
	}

	return ProjectActivity(member, openLoans, fines, notifications), nil
}
