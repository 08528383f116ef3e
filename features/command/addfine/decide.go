package addfine

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	memberFound bool
	fines       []core.Fine // creation order
}

// Decision is the outcome of adding a fine: either a top-up of the member's
// first recorded fine or a new fine row.
type Decision struct {
	TopUpExisting bool
	Existing      core.Fine
	Amount        core.Rupees // the resulting (capped) amount
}

// Decide implements the add-fine rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A member with MemberID and a positive amount
//	WHEN: AddFine command is received
//	THEN: the amount is added to the first fine in the member's list, capped
//	      at 300; with no fines on record a new fine is created, capped at 300
//	ERROR: core.ErrMemberNotFound if the member does not exist
//	ERROR: core.ErrInvalidAmount if the amount is not positive
func Decide(s state, command Command) (Decision, error) {
	if command.Amount <= 0 {
		return Decision{}, core.ErrInvalidAmount
	}

	if !s.memberFound {
		return Decision{}, core.ErrMemberNotFound
	}

	if len(s.fines) > 0 {
		first := s.fines[0]

		return Decision{
			TopUpExisting: true,
			Existing:      first,
			Amount:        core.CapAutoFine(first.Amount + command.Amount),
		}, nil
	}

	return Decision{Amount: core.CapAutoFine(command.Amount)}, nil
}
