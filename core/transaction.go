package core

import (
	"time"

	"github.com/google/uuid"
)

// BorrowingTransaction represents a single loan of a book to a member.
// ReturnDate holds NoReturnDate while the loan is outstanding.
type BorrowingTransaction struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	MemberID   uuid.UUID
	BorrowDate time.Time
	ReturnDate time.Time
	Status     TransactionStatus
}

// BuildBorrowingTransaction creates a new outstanding transaction.
func BuildBorrowingTransaction(
	id uuid.UUID,
	bookID uuid.UUID,
	memberID uuid.UUID,
	borrowDate time.Time,
) BorrowingTransaction {

	return BorrowingTransaction{
		ID:         id,
		BookID:     bookID,
		MemberID:   memberID,
		BorrowDate: ToOccurredAt(borrowDate),
		ReturnDate: NoReturnDate,
		Status:     TransactionBorrowed,
	}
}

// IsOutstanding reports whether the loan has not been returned.
func (t BorrowingTransaction) IsOutstanding() bool {
	return t.Status != TransactionReturned
}

// IsOverdueAt reports whether the loan is outstanding and past its due date at asOf.
func (t BorrowingTransaction) IsOverdueAt(asOf time.Time) bool {
	return t.IsOutstanding() && asOf.After(DueDate(t.BorrowDate))
}

// DueDate returns the date this loan is due.
func (t BorrowingTransaction) DueDate() time.Time {
	return DueDate(t.BorrowDate)
}
