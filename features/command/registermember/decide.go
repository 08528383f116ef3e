package registermember

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	emailTaken bool
}

// Decide implements the registration rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A name and an email address
//	WHEN: RegisterMember command is received
//	THEN: a new Active member account is created
//	ERROR: core.ErrMissingField if name or email is empty
//	ERROR: core.ErrDuplicateEmail if the email is already registered
func Decide(s state, command Command) error {
	if command.Name == "" || command.Email == "" {
		return core.ErrMissingField
	}

	if s.emailTaken {
		return core.ErrDuplicateEmail
	}

	return nil
}
