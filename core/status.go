package core

import (
	"fmt"
)

// MembershipStatus is the closed set of states a member account can be in.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "Active"
	MembershipSuspended MembershipStatus = "Suspended"
	MembershipInactive  MembershipStatus = "Inactive"
)

// ParseMembershipStatus converts a raw string into a MembershipStatus.
// Returns ErrInvalidStatus for anything outside the closed set.
func ParseMembershipStatus(s string) (MembershipStatus, error) {
	switch MembershipStatus(s) {
	case MembershipActive, MembershipSuspended, MembershipInactive:
		return MembershipStatus(s), nil
	default:
		return "", fmt.Errorf("%w: membership status %q", ErrInvalidStatus, s)
	}
}

// String returns the string representation of the status.
func (s MembershipStatus) String() string {
	return string(s)
}

// TransactionStatus is the closed set of states a borrowing transaction can be in.
type TransactionStatus string

const (
	TransactionBorrowed TransactionStatus = "Borrowed"
	TransactionReturned TransactionStatus = "Returned"
)

// ParseTransactionStatus converts a raw string into a TransactionStatus.
// Returns ErrInvalidStatus for anything outside the closed set.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case TransactionBorrowed, TransactionReturned:
		return TransactionStatus(s), nil
	default:
		return "", fmt.Errorf("%w: transaction status %q", ErrInvalidStatus, s)
	}
}

// String returns the string representation of the status.
func (s TransactionStatus) String() string {
	return string(s)
}

// FineStatus is the closed set of states a fine can be in.
type FineStatus string

const (
	FinePending FineStatus = "Pending"
	FinePaid    FineStatus = "Paid"
)

// ParseFineStatus converts a raw string into a FineStatus.
// Returns ErrInvalidStatus for anything outside the closed set.
func ParseFineStatus(s string) (FineStatus, error) {
	switch FineStatus(s) {
	case FinePending, FinePaid:
		return FineStatus(s), nil
	default:
		return "", fmt.Errorf("%w: fine status %q", ErrInvalidStatus, s)
	}
}

// String returns the string representation of the status.
func (s FineStatus) String() string {
	return string(s)
}
