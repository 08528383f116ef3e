package removetransaction

import (
	"github.com/google/uuid"
)

const (
	commandType = "RemoveTransaction"
)

// Command represents the intent to delete a closed borrowing transaction.
type Command struct {
	TransactionID uuid.UUID
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(transactionID uuid.UUID) Command {
	return Command{
		TransactionID: transactionID,
	}
}
