package updatefine

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	fine      core.Fine
	fineFound bool
}

// Decide implements the overwrite rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A fine with FineID, a positive amount, a valid status and a date
//	WHEN: UpdateFine command is received
//	THEN: the fine amount becomes min(amount, 5000) and status and date are overwritten
//	ERROR: core.ErrFineNotFound if the fine does not exist
//	ERROR: core.ErrInvalidAmount if the amount is not positive
//	ERROR: core.ErrInvalidStatus if the status is not Pending or Paid
func Decide(s state, command Command) (core.Fine, error) {
	if command.Amount <= 0 {
		return core.Fine{}, core.ErrInvalidAmount
	}

	if _, err := core.ParseFineStatus(string(command.Status)); err != nil {
		return core.Fine{}, err
	}

	if !s.fineFound {
		return core.Fine{}, core.ErrFineNotFound
	}

	updated := s.fine
	updated.Amount = core.CapAdminFine(command.Amount)
	updated.Status = command.Status
	updated.TransactionDate = core.ToOccurredAt(command.TransactionDate)

	return updated, nil
}
