package removebook

import (
	"github.com/google/uuid"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent to remove a catalog record.
type Command struct {
	BookID uuid.UUID
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID) Command {
	return Command{
		BookID: bookID,
	}
}
