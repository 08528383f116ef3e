// Package removemember implements the Remove Member use case.
//
// An account can only be removed while the member holds no outstanding loan
// and has no Pending fine older than 30 days.
package removemember
