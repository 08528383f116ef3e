package updatemember

import (
	"github.com/openshelf/circulation-go/core"
)

// state represents the slice of the store relevant to this decision.
type state struct {
	member      core.Member
	memberFound bool
}

// Decide implements the profile edit rules. This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A member account with MemberID
//	WHEN: UpdateMember command is received
//	THEN: name, email, phone and address are overwritten; status is untouched
//	ERROR: core.ErrMemberNotFound if the account does not exist
//	ERROR: core.ErrMissingField if name or email is empty
func Decide(s state, command Command) (core.Member, error) {
	if !s.memberFound {
		return core.Member{}, core.ErrMemberNotFound
	}

	if command.Name == "" || command.Email == "" {
		return core.Member{}, core.ErrMissingField
	}

	updated := s.member
	updated.Name = command.Name
	updated.Email = command.Email
	updated.Phone = command.Phone
	updated.Address = command.Address

	return updated, nil
}
