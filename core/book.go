package core

import (
	"github.com/google/uuid"
)

// Book represents a catalog record and its current copy availability.
// AvailableCopies never goes negative; the storage layer backstops this.
type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	Genre           string
	ISBN            string
	YearPublished   int
	AvailableCopies int
}

// BuildBook creates a new Book with the provided attributes.
func BuildBook(
	id uuid.UUID,
	title string,
	author string,
	genre string,
	isbn string,
	yearPublished int,
	availableCopies int,
) Book {

	return Book{
		ID:              id,
		Title:           title,
		Author:          author,
		Genre:           genre,
		ISBN:            isbn,
		YearPublished:   yearPublished,
		AvailableCopies: availableCopies,
	}
}
