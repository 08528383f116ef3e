package payfine

import (
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

const (
	commandType = "PayFine"
)

// Command represents the intent to pay a fine in full.
type Command struct {
	FineID     uuid.UUID
	Amount     core.Rupees
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(fineID uuid.UUID, amount core.Rupees, occurredAt time.Time) Command {
	return Command{
		FineID:     fineID,
		Amount:     amount,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
