package borrowbook

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	member      core.Member
	memberFound bool
	book        core.Book
	bookFound   bool
	openLoans   []core.BorrowingTransaction
}

// Decide implements the borrow rules. This is a pure function with no side
// effects - it takes the loaded state and a command and reports whether the
// borrow may proceed.
//
// Business Rules (checked in order, first failure wins):
//
//	GIVEN: A book with BookID and member with MemberID
//	WHEN: BorrowBook command is received
//	THEN: the borrow is accepted
//	ERROR: core.ErrMemberNotActiveOrMissing if the member is missing or not Active
//	ERROR: core.ErrMemberHasOverdueLoan if any open loan is past due
//	ERROR: core.ErrBorrowLimitReached if the member already has 5 open loans
//	ERROR: core.ErrBookUnavailable if the book is missing or has no available copy
//	ERROR: core.ErrBookAlreadyBorrowed if the member already holds this book
func Decide(s state, command Command) error {
	if !s.memberFound || s.member.Status != core.MembershipActive {
		return core.ErrMemberNotActiveOrMissing
	}

	for _, loan := range s.openLoans {
		if loan.IsOverdueAt(command.OccurredAt) {
			return core.ErrMemberHasOverdueLoan
		}
	}

	if len(s.openLoans) >= core.MaxOpenLoans {
		return core.ErrBorrowLimitReached
	}

	if !s.bookFound || s.book.AvailableCopies <= 0 {
		return core.ErrBookUnavailable
	}

	for _, loan := range s.openLoans {
		if loan.BookID == command.BookID {
			return core.ErrBookAlreadyBorrowed
		}
	}

	return nil
}
