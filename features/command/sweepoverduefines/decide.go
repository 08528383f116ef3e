package sweepoverduefines

import (
	"github.com/openshelf/circulation-go/core"
)

// loanState represents the slice of the store relevant to one overdue loan.
type loanState struct {
	transaction core.BorrowingTransaction
	member      core.Member
	memberFines []core.Fine
}

// loanDecision is the outcome for one overdue loan.
type loanDecision struct {
	fineAmount      core.Rupees
	fineIsDuplicate bool // a Pending fine of the same amount already exists
	suspendMember   bool
}

func (d loanDecision) hasFineToRecord() bool {
	return d.fineAmount > 0 && !d.fineIsDuplicate
}

// decideLoan computes the fine for one overdue loan. This is a pure function
// with no side effects.
//
// Business Rules:
//
//	GIVEN: An outstanding loan overdue at asOf
//	WHEN: the sweep visits it
//	THEN: a fine of 10 per overdue day capped at 300 is due
//	AND: when overdueDays > 30 a 200 surcharge is added and the member is suspended
//	SKIP: when the member already has a Pending fine of the same amount
//	      (unlike the return path, the calendar day is not compared here)
func decideLoan(s loanState, asOf core.OccurredAtTS) loanDecision {
	overdueDays := core.OverdueDays(s.transaction.BorrowDate, asOf)
	if overdueDays <= 0 {
		return loanDecision{}
	}

	amount := core.BaseOverdueFine(overdueDays)

	var decision loanDecision

	if overdueDays > core.SurchargeThresholdDays {
		amount += core.LateReturnSurcharge
		decision.suspendMember = s.member.Status != core.MembershipSuspended
	}

	decision.fineAmount = amount

	for _, fine := range s.memberFines {
		if fine.IsPending() && fine.Amount == amount {
			decision.fineIsDuplicate = true
			break
		}
	}

	return decision
}
