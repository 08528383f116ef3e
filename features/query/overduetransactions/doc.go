// Package overduetransactions implements the Overdue Transactions query:
// the set of outstanding loans past their due date as of a given time.
package overduetransactions
