package overduetransactions

import (
	"context"
	"time"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the QueryHandler for store operations.
type Store interface {
	ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]core.BorrowingTransaction, error)
}

// QueryHandler orchestrates the query workflow: Load -> Project.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{store: store}
}

// Handle executes the query and returns the overdue loan set.
func (h QueryHandler) Handle(ctx context.Context, query Query) (OverdueLoans, error) {
	transactions, err := h.store.ListOverdueTransactions(ctx, query.AsOf)
	if err != nil {
		return OverdueLoans{}, err
	}

	return ProjectOverdueLoans(transactions, query), nil
}
