package returnbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to return an outstanding loan.
type Command struct {
	TransactionID uuid.UUID
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(transactionID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		TransactionID: transactionID,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}
}
