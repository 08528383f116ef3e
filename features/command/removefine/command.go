package removefine

import (
	"github.com/google/uuid"
)

const (
	commandType = "RemoveFine"
)

// Command represents the intent to delete a paid fine.
type Command struct {
	FineID uuid.UUID
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(fineID uuid.UUID) Command {
	return Command{
		FineID: fineID,
	}
}
