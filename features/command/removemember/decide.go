package removemember

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	memberFound bool
	openLoans   []core.BorrowingTransaction
	fines       []core.Fine
}

// Decide implements the removal rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A member account with MemberID
//	WHEN: RemoveMember command is received
//	THEN: the account is deleted
//	ERROR: core.ErrMemberNotFound if the account does not exist
//	ERROR: core.ErrMemberHasOutstandingLoans if any open loan remains
//	ERROR: core.ErrMemberHasStaleFines if a Pending fine older than 30 days remains
func Decide(s state, command Command) error {
	if !s.memberFound {
		return core.ErrMemberNotFound
	}

	if len(s.openLoans) > 0 {
		return core.ErrMemberHasOutstandingLoans
	}

	for _, fine := range s.fines {
		if fine.IsStaleAt(command.OccurredAt) {
			return core.ErrMemberHasStaleFines
		}
	}

	return nil
}
