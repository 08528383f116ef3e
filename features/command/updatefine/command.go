package updatefine

import (
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

const (
	commandType = "UpdateFine"
)

// Command represents the intent to overwrite a fine administratively.
type Command struct {
	FineID          uuid.UUID
	Amount          core.Rupees
	Status          core.FineStatus
	TransactionDate time.Time
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(fineID uuid.UUID, amount core.Rupees, status core.FineStatus, transactionDate time.Time) Command {
	return Command{
		FineID:          fineID,
		Amount:          amount,
		Status:          status,
		TransactionDate: transactionDate,
	}
}
