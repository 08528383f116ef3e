package approachingfines

import (
	"context"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	ListOutstandingTransactions(ctx context.Context) ([]core.BorrowingTransaction, error)
}

// QueryHandler orchestrates the query workflow: Load -> Project.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle executes the query and returns the due-date outlook.
func (h QueryHandler) Handle(ctx context.Context, query Query) (UpcomingFines, error) {
	transactions, err := h.store.ListOutstandingTransactions(ctx)
	if err != nil {
		return UpcomingFines{}, err
	}

	return ProjectUpcomingFines(transactions, query), nil
}
