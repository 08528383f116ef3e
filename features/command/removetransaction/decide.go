package removetransaction

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	transaction      core.BorrowingTransaction
	transactionFound bool
}

// Decide implements the deletion rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A borrowing transaction with TransactionID
//	WHEN: RemoveTransaction command is received
//	THEN: the transaction is deleted
//	ERROR: core.ErrTransactionNotFoundOrReturned if it does not exist
//	ERROR: core.ErrTransactionStillOutstanding if it has not been returned
func Decide(s state, _ Command) error {
	if !s.transactionFound {
		return core.ErrTransactionNotFoundOrReturned
	}

	if s.transaction.IsOutstanding() {
		return core.ErrTransactionStillOutstanding
	}

	return nil
}
