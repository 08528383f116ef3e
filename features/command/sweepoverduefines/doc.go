// Package sweepoverduefines implements the overdue-fine sweep.
//
// The sweep walks every currently-overdue outstanding loan and applies the
// automatic fine: 10 per overdue day capped at 300, plus a 200 surcharge and
// member suspension when the loan is more than 30 days overdue. A member who
// already has a Pending fine of the same amount is skipped. The sweep is an
// operator/cron entry point; it is not transactional, and a failure part-way
// leaves the fines applied so far in place for the next run to continue from.
package sweepoverduefines
