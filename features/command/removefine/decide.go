package removefine

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	fine      core.Fine
	fineFound bool
}

// Decide implements the deletion rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A fine with FineID
//	WHEN: RemoveFine command is received
//	THEN: the fine is deleted
//	ERROR: core.ErrFineNotFound if the fine does not exist
//	ERROR: core.ErrFineNotPaid if the fine is still Pending
func Decide(s state, _ Command) error {
	if !s.fineFound {
		return core.ErrFineNotFound
	}

	if s.fine.IsPending() {
		return core.ErrFineNotPaid
	}

	return nil
}
