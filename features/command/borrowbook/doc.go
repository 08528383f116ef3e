// Package borrowbook implements the Borrow Book use case.
//
// A borrow is accepted only when the member exists and is Active, holds no
// overdue outstanding loan, is below the open-loan limit, the book has an
// available copy, and the member does not already hold an open loan for the
// same book. Preconditions are checked in that order and the first failure
// wins. On success the available copy count is decremented and an outstanding
// transaction is recorded.
package borrowbook
