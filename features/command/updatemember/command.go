package updatemember

import (
	"github.com/google/uuid"
)

const (
	commandType = "UpdateMember"
)

// Command represents the intent to edit a member's profile attributes.
type Command struct {
	MemberID uuid.UUID
	Name     string
	Email    string
	Phone    string
	Address  string
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(memberID uuid.UUID, name string, email string, phone string, address string) Command {
	return Command{
		MemberID: memberID,
		Name:     name,
		Email:    email,
		Phone:    phone,
		Address:  address,
	}
}
