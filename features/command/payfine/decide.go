package payfine

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	fine      core.Fine
	fineFound bool
}

// Decide implements the payment rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A Pending fine with FineID
//	WHEN: PayFine command is received with the exact fine amount
//	THEN: the fine is marked Paid and one payment notification is recorded
//	ERROR: core.ErrFineNotFound if the fine does not exist
//	ERROR: core.ErrFineAlreadyPaid if the fine is already Paid
//	ERROR: core.ErrPaymentAmountMismatch if the amount differs from the fine amount
func Decide(s state, command Command) (core.Fine, error) {
	if !s.fineFound {
		return core.Fine{}, core.ErrFineNotFound
	}

	if !s.fine.IsPending() {
		return core.Fine{}, core.ErrFineAlreadyPaid
	}

	if command.Amount != s.fine.Amount {
		return core.Fine{}, core.ErrPaymentAmountMismatch
	}

	paid := s.fine
	paid.Status = core.FinePaid

	return paid, nil
}
