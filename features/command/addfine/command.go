package addfine

import (
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

const (
	commandType = "AddFine"
)

// Command represents the intent to add a fine amount to a member account.
type Command struct {
	MemberID   uuid.UUID
	Amount     core.Rupees
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(memberID uuid.UUID, amount core.Rupees, occurredAt time.Time) Command {
	return Command{
		MemberID:   memberID,
		Amount:     amount,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
