// Package removetransaction implements the Remove Transaction use case.
//
// Only closed (Returned) transactions can be deleted; outstanding loans must
// be returned first.
package removetransaction
