package core

import (
	"time"
)

// Circulation policy constants.
//
// The fine caps and rates are deliberately kept as separate named constants
// even where they overlap: the automatic calculation caps at MaxAutoFine, the
// administrative override caps at AdminFineCap, the late-return surcharge is
// added on top of the capped base without re-capping, and the approaching-fine
// estimator uses its own EstimateDailyRate. These values evolved independently
// and are not interchangeable.
const (
	// LoanPeriodDays is the fixed loan period; a loan is overdue once the
	// current date exceeds borrowDate + LoanPeriodDays.
	LoanPeriodDays = 14

	// MaxOpenLoans is the maximum number of concurrently outstanding
	// transactions a member may have.
	MaxOpenLoans = 5

	// DailyFineRate is the fine charged per overdue day.
	DailyFineRate = Rupees(10)

	// MaxAutoFine caps automatically calculated fines.
	MaxAutoFine = Rupees(300)

	// LateReturnSurcharge is added when a return is more than
	// SurchargeThresholdDays overdue, or when the member is already
	// suspended at fine-creation time. The surcharge is not re-capped.
	LateReturnSurcharge = Rupees(200)

	// SurchargeThresholdDays is the overdue-day count beyond which the
	// member is suspended and the surcharge applies.
	SurchargeThresholdDays = 30

	// AdminFineCap caps administrative fine overwrites. This is a different
	// cap than MaxAutoFine.
	AdminFineCap = Rupees(5000)

	// EstimateDailyRate is the daily rate used by the approaching-fine
	// estimator. It differs from DailyFineRate.
	EstimateDailyRate = Rupees(15)

	// InactivityWindowDays is the trailing window without any borrow after
	// which a member becomes Inactive.
	InactivityWindowDays = 365

	// StaleFineAgeDays is the age of a Pending fine beyond which the member
	// is suspended by the membership evaluator.
	StaleFineAgeDays = 30
)

// DueDate returns the date a loan started at borrowDate is due.
func DueDate(borrowDate time.Time) time.Time {
	return borrowDate.Add(LoanPeriodDays * 24 * time.Hour)
}

// OverdueDays returns the number of whole days asOf lies past the due date
// of a loan started at borrowDate. Zero or negative means not overdue.
func OverdueDays(borrowDate time.Time, asOf time.Time) int {
	return int(asOf.Sub(DueDate(borrowDate)).Hours() / 24)
}

// BaseOverdueFine returns the automatically calculated fine for the given
// overdue day count: DailyFineRate per day, capped at MaxAutoFine.
func BaseOverdueFine(overdueDays int) Rupees {
	if overdueDays <= 0 {
		return 0
	}

	fine := Rupees(overdueDays) * DailyFineRate
	if fine > MaxAutoFine {
		fine = MaxAutoFine
	}

	return fine
}

// CapAutoFine clamps amount to MaxAutoFine.
func CapAutoFine(amount Rupees) Rupees {
	if amount > MaxAutoFine {
		return MaxAutoFine
	}

	return amount
}

// CapAdminFine clamps amount to AdminFineCap.
func CapAdminFine(amount Rupees) Rupees {
	if amount > AdminFineCap {
		return AdminFineCap
	}

	return amount
}

// SameCalendarDay reports whether a and b fall on the same UTC calendar day.
func SameCalendarDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()

	return ay == by && am == bm && ad == bd
}

// DaysSince returns the number of whole days between then and asOf.
func DaysSince(then time.Time, asOf time.Time) int {
	return int(asOf.Sub(then).Hours() / 24)
}
