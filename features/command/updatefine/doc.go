// Package updatefine implements the Update Fine use case.
//
// An administrative overwrite of a fine's amount, status and date. The amount
// is capped at 5000, deliberately different from the 300 cap on automatically
// calculated fines.
package updatefine
