package approachingfines

import (
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// LoanPreview is one outstanding loan with its due-date outlook.
// DaysRemaining is negative for a loan already past due, and EstimatedFine
// is non-zero only in that case.
type LoanPreview struct {
	TransactionID uuid.UUID
	BookID        uuid.UUID
	MemberID      uuid.UUID
	DueDate       time.Time
	DaysRemaining int
	EstimatedFine core.Rupees
}

// UpcomingFines is the query result: previews ordered by borrow date, oldest first.
type UpcomingFines struct {
	AsOf  core.OccurredAtTS
	Loans []LoanPreview
	Count int
}
