package returnbook

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	transaction      core.BorrowingTransaction
	transactionFound bool
	member           core.Member
	memberFines      []core.Fine
}

// Decision is the outcome of a return: which effects the handler must apply.
type Decision struct {
	OverdueDays     int
	FineAmount      core.Rupees // zero means no fine
	FineIsDuplicate bool        // an identical fine already exists, do not record another
	SuspendMember   bool
}

// HasFineToRecord reports whether a new fine row must be inserted.
func (d Decision) HasFineToRecord() bool {
	return d.FineAmount > 0 && !d.FineIsDuplicate
}

// Decide implements the return rules. This is a pure function with no side
// effects - it takes the loaded state and a command and returns the effects
// to apply.
//
// Business Rules:
//
//	GIVEN: An outstanding transaction with TransactionID
//	WHEN: ReturnBook command is received
//	THEN: the transaction is closed and the copy restored
//	AND: overdueDays = returnDate - (borrowDate + 14 days); if positive, a fine
//	     of 10 per day capped at 300 is due
//	AND: a 200 surcharge is added when overdueDays > 30 (suspending the member)
//	     or when the member is already suspended
//	AND: no fine is recorded when a Pending one with the same member, amount
//	     and calendar day already exists
//	ERROR: core.ErrTransactionNotFoundOrReturned if missing or already returned
func Decide(s state, command Command) (Decision, error) {
	if !s.transactionFound || !s.transaction.IsOutstanding() {
		return Decision{}, core.ErrTransactionNotFoundOrReturned
	}

	overdueDays := core.OverdueDays(s.transaction.BorrowDate, command.OccurredAt)
	decision := Decision{OverdueDays: overdueDays}

	if overdueDays <= 0 {
		return decision, nil
	}

	amount := core.BaseOverdueFine(overdueDays)

	switch {
	case overdueDays > core.SurchargeThresholdDays:
		amount += core.LateReturnSurcharge
		decision.SuspendMember = true
	case s.member.Status == core.MembershipSuspended:
		amount += core.LateReturnSurcharge
	}

	decision.FineAmount = amount

	for _, fine := range s.memberFines {
		if fine.IsPending() && fine.Amount == amount && core.SameCalendarDay(fine.TransactionDate, command.OccurredAt) {
			decision.FineIsDuplicate = true
			break
		}
	}

	return decision, nil
}
