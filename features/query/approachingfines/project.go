package approachingfines

import (
	"github.com/openshelf/circulation-go/core"
)

// ProjectUpcomingFines derives the due-date outlook for every outstanding
// loan. This is a pure function with no side effects.
func ProjectUpcomingFines(transactions []core.BorrowingTransaction, query Query) UpcomingFines {
	loans := make([]LoanPreview, 0, len(transactions))

	for _, transaction := range transactions {
		overdueDays := core.OverdueDays(transaction.BorrowDate, query.AsOf)

		preview := LoanPreview{
			TransactionID: transaction.ID,
			BookID:        transaction.BookID,
			MemberID:      transaction.MemberID,
			DueDate:       transaction.DueDate(),
			DaysRemaining: -overdueDays,
		}

		if overdueDays > 0 {
			preview.EstimatedFine = core.Rupees(overdueDays) * core.EstimateDailyRate
		}

		loans = append(loans, preview)
	}

	return UpcomingFines{
		AsOf:  query.AsOf,
		Loans: loans,
		Count: len(loans),
	}
}
