package removebook

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	bookFound bool
	openLoans []core.BorrowingTransaction
}

// Decide implements the removal rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A catalog record with BookID
//	WHEN: RemoveBook command is received
//	THEN: the record is deleted
//	ERROR: core.ErrBookNotFound if the record does not exist
//	ERROR: core.ErrBookHasOutstandingLoans if any open loan references it
func Decide(s state, _ Command) error {
	if !s.bookFound {
		return core.ErrBookNotFound
	}

	if len(s.openLoans) > 0 {
		return core.ErrBookHasOutstandingLoans
	}

	return nil
}
