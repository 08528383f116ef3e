package evaluatememberships

import (
	"github.com/openshelf/circulation-go/core"
)

// memberState represents the slice of the store relevant to one member.
type memberState struct {
	member       core.Member
	fines        []core.Fine
	transactions []core.BorrowingTransaction
}

// decideStatus derives the target membership status for one member. This is
// a pure function with no side effects.
//
// Business Rules (inactivity overrides the fine-based rules):
//
//	GIVEN: A member with their fines and borrowing history
//	WHEN: the membership sweep visits them
//	THEN: a Pending fine older than 30 days -> Suspended
//	AND: zero Pending fines -> Active
//	AND: no borrow within the trailing 365 days -> Inactive, overriding both
//	AND: otherwise the current status is kept
func decideStatus(s memberState, asOf core.OccurredAtTS) core.MembershipStatus {
	target := s.member.Status

	hasStaleFine := false
	hasPendingFine := false

	for _, fine := range s.fines {
		if fine.IsPending() {
			hasPendingFine = true
		}
		if fine.IsStaleAt(asOf) {
			hasStaleFine = true
		}
	}

	switch {
	case hasStaleFine:
		target = core.MembershipSuspended
	case !hasPendingFine:
		target = core.MembershipActive
	}

	if !hasRecentBorrow(s.transactions, asOf) {
		target = core.MembershipInactive
	}

	return target
}

func hasRecentBorrow(transactions []core.BorrowingTransaction, asOf core.OccurredAtTS) bool {
	for _, transaction := range transactions {
		if core.DaysSince(transaction.BorrowDate, asOf) <= core.InactivityWindowDays {
			return true
		}
	}

	return false
}
