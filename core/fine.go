package core

import (
	"time"

	"github.com/google/uuid"
)

// Fine represents a monetary penalty on a member account.
type Fine struct {
	ID              uuid.UUID
	MemberID        uuid.UUID
	Amount          Rupees
	Status          FineStatus
	TransactionDate time.Time
}

// BuildFine creates a new Fine with the provided attributes.
func BuildFine(
	id uuid.UUID,
	memberID uuid.UUID,
	amount Rupees,
	status FineStatus,
	transactionDate time.Time,
) Fine {

	return Fine{
		ID:              id,
		MemberID:        memberID,
		Amount:          amount,
		Status:          status,
		TransactionDate: ToOccurredAt(transactionDate),
	}
}

// IsPending reports whether the fine has not been paid.
func (f Fine) IsPending() bool {
	return f.Status == FinePending
}

// IsStaleAt reports whether the fine is Pending and older than StaleFineAgeDays at asOf.
func (f Fine) IsStaleAt(asOf time.Time) bool {
	return f.IsPending() && DaysSince(f.TransactionDate, asOf) > StaleFineAgeDays
}
