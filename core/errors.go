package core

import (
	"errors"
)

// Not-found errors: the referenced entity does not exist.
var (
	ErrBookNotFound         = errors.New("book not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrFineNotFound         = errors.New("fine not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Conflict / business-rule errors: user-correctable conditions,
// returned synchronously with no retry.
var (
	ErrMemberNotActiveOrMissing      = errors.New("member is missing or not active")
	ErrMemberHasOverdueLoan          = errors.New("member has an overdue loan")
	ErrBorrowLimitReached            = errors.New("member has reached the open loan limit")
	ErrBookUnavailable               = errors.New("book is missing or has no available copies")
	ErrBookAlreadyBorrowed           = errors.New("member already has an open loan for this book")
	ErrTransactionNotFoundOrReturned = errors.New("transaction not found or already returned")
	ErrTransactionStillOutstanding   = errors.New("transaction is still outstanding")
	ErrBookHasOutstandingLoans       = errors.New("book has outstanding loans")
	ErrMemberHasOutstandingLoans     = errors.New("member has outstanding loans")
	ErrMemberHasStaleFines           = errors.New("member has pending fines older than 30 days")
	ErrDuplicateISBN                 = errors.New("a book with this ISBN already exists")
	ErrDuplicateEmail                = errors.New("a member with this email already exists")
	ErrFineAlreadyPaid               = errors.New("fine is already paid")
	ErrFineNotPaid                   = errors.New("fine is not paid")
	ErrPaymentAmountMismatch         = errors.New("payment amount does not match the fine amount")
)

// Validation errors: malformed input caught before rule evaluation.
var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidCopies = errors.New("copy count must be positive")
	ErrMissingField  = errors.New("required field is empty")
)

// IsNotFound reports whether err denotes a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookNotFound) ||
		errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrFineNotFound) ||
		errors.Is(err, ErrNotificationNotFound)
}

// IsConflict reports whether err denotes a business-rule violation.
func IsConflict(err error) bool {
	conflicts := []error{
		ErrMemberNotActiveOrMissing,
		ErrMemberHasOverdueLoan,
		ErrBorrowLimitReached,
		ErrBookUnavailable,
		ErrBookAlreadyBorrowed,
		ErrTransactionNotFoundOrReturned,
		ErrTransactionStillOutstanding,
		ErrBookHasOutstandingLoans,
		ErrMemberHasOutstandingLoans,
		ErrMemberHasStaleFines,
		ErrDuplicateISBN,
		ErrDuplicateEmail,
		ErrFineAlreadyPaid,
		ErrFineNotPaid,
		ErrPaymentAmountMismatch,
	}

	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}

	return false
}

// IsValidation reports whether err denotes malformed input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCopies) ||
		errors.Is(err, ErrMissingField)
}
