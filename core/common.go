package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// Rupees represents a currency amount in whole rupees.
type Rupees = int64

// OccurredAtTS represents when something happened in the domain.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// NoReturnDate is the sentinel "not yet returned" value, distinct from any real calendar date.
var NoReturnDate = time.Time{}

// IsNoReturnDate reports whether t is the sentinel "not yet returned" value.
func IsNoReturnDate(t time.Time) bool {
	return t.IsZero()
}
