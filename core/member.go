package core

import (
	"github.com/google/uuid"
)

// Member represents a member account. The paired credential/identity record
// lives at the boundary and is not part of this model.
type Member struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address string
	Status  MembershipStatus
}

// BuildMember creates a new Member. Newly registered members start Active.
func BuildMember(
	id uuid.UUID,
	name string,
	email string,
	phone string,
	address string,
) Member {

	return Member{
		ID:      id,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
		Status:  MembershipActive,
	}
}
