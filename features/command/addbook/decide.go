package addbook

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	existing      core.Book
	existingFound bool
}

// Decision is the outcome of adding a title: either a new catalog row or a
// copy-count top-up of the existing row with the same ISBN.
type Decision struct {
	TopUpExisting bool
	Existing      core.Book
}

// Decide implements the add rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A title with ISBN and a positive copy count
//	WHEN: AddBook command is received
//	THEN: a new catalog record is inserted, unless a record with the same
//	      ISBN exists, in which case its available copy count is incremented
//	ERROR: core.ErrMissingField if title or ISBN is empty
//	ERROR: core.ErrInvalidCopies if the copy count is not positive
func Decide(s state, command Command) (Decision, error) {
	if command.Title == "" || command.ISBN == "" {
		return Decision{}, core.ErrMissingField
	}

	if command.AvailableCopies <= 0 {
		return Decision{}, core.ErrInvalidCopies
	}

	if s.existingFound {
		return Decision{TopUpExisting: true, Existing: s.existing}, nil
	}

	return Decision{}, nil
}
