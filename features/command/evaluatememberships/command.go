package evaluatememberships

import (
	"time"

	"github.com/openshelf/circulation-go/core"
)

const (
	commandType = "EvaluateMemberships"
)

// Command represents the intent to run the membership status sweep as of a given time.
type Command struct {
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(occurredAt time.Time) Command {
	return Command{
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
