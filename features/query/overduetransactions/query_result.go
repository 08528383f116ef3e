package overduetransactions

import (
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// OverdueLoan is one overdue loan with its derived due date and overdue day count.
type OverdueLoan struct {
	TransactionID uuid.UUID
	BookID        uuid.UUID
	MemberID      uuid.UUID
	BorrowDate    time.Time
	DueDate       time.Time
	OverdueDays   int
}

// OverdueLoans is the query result: overdue loans ordered by borrow date, oldest first.
type OverdueLoans struct {
	AsOf  core.OccurredAtTS
	Loans []OverdueLoan
	Count int
}
