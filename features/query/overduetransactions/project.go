package overduetransactions

import (
	"github.com/openshelf/circulation-go/core"
)

// ProjectOverdueLoans derives the result rows from the overdue transaction
// set. This is a pure function with no side effects.
func ProjectOverdueLoans(transactions []core.BorrowingTransaction, query Query) OverdueLoans {
	loans := make([]OverdueLoan, 0, len(transactions))

	for _, transaction := range transactions {
		loans = append(loans, OverdueLoan{
			TransactionID: transaction.ID,
			BookID:        transaction.BookID,
			MemberID:      transaction.MemberID,
			BorrowDate:    transaction.BorrowDate,
			DueDate:       transaction.DueDate(),
			OverdueDays:   core.OverdueDays(transaction.BorrowDate, query.AsOf),
		})
	}

	return OverdueLoans{
		AsOf:  query.AsOf,
		Loans: loans,
		Count: len(loans),
	}
}
