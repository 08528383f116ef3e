package addbook

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// Store defines the interface needed by the CommandHandler for store operations.
type Store interface {
	GetBookByISBN(ctx context.Context, isbn string) (core.Book, error)
	InsertBook(ctx context.Context, book core.Book) error
	AdjustAvailableCopies(ctx context.Context, id uuid.UUID, delta int) error
	GetBookByID(ctx context.Context, id uuid.UUID) (core.Book, error)
}

// CommandHandler orchestrates the add workflow: Load -> Decide -> Apply.
type CommandHandler struct {
	store Store
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store Store) CommandHandler {
	return CommandHandler{store: store}
}

// Handle executes the add workflow and returns the resulting catalog record.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Book, error) {
	var s state

	existing, lookupErr := h.store.GetBookByISBN(ctx, command.ISBN)
	switch {
	case lookupErr == nil:
		s.existing = existing
		s.existingFound = true
	case errors.Is(lookupErr, core.ErrBookNotFound):
		// decided below
	default:
		return core.Book{}, lookupErr
	}

	decision, decideErr := Decide(s, command)
	if decideErr != nil {
		return core.Book{}, decideErr
	}

	if decision.TopUpExisting {
		if err := h.store.AdjustAvailableCopies(ctx, decision.Existing.ID, command.AvailableCopies); err != nil {
			return core.Book{}, err
		}

		return h.store.GetBookByID(ctx, decision.Existing.ID)
	}

	book := core.BuildBook(
		uuid.New(),
		command.Title,
		command.Author,
		command.Genre,
		command.ISBN,
		command.YearPublished,
		command.AvailableCopies,
	)

	if err := h.store.InsertBook(ctx, book); err != nil {
		return core.Book{}, err
	}

	return book, nil
}
