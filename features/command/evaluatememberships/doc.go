// Package evaluatememberships implements the membership status sweep.
//
// For every member the target status is derived from their fines and
// borrowing history: a Pending fine older than 30 days suspends, zero
// Pending fines reactivates, and no borrow in the trailing 365 days makes
// the member Inactive, overriding both. Status transitions are persisted
// and each one records a status-change notification.
package evaluatememberships
