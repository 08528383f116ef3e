// Package returnbook implements the Return Book use case.
//
// Returning an outstanding loan closes the transaction and restores the
// available copy. When the return is late, an overdue fine is applied:
// 10 per overdue day capped at 300, plus a 200 surcharge when the return is
// more than 30 days overdue (which also suspends the member) or when the
// member is already suspended. A fine identical in member, amount and
// calendar day to an existing one is not recorded twice.
package returnbook
