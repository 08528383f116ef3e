// Package removefine implements the Remove Fine use case.
//
// Only Paid fines can be deleted; a Pending fine must be paid first.
package removefine
