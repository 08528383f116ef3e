package addbook

const (
	commandType = "AddBook"
)

// Command represents the intent to add copies of a title to the catalog.
type Command struct {
	Title           string
	Author          string
	Genre           string
	ISBN            string
	YearPublished   int
	AvailableCopies int
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	title string,
	author string,
	genre string,
	isbn string,
	yearPublished int,
	availableCopies int,
) Command {

	return Command{
		Title:           title,
		Author:          author,
		Genre:           genre,
		ISBN:            isbn,
		YearPublished:   yearPublished,
		AvailableCopies: availableCopies,
	}
}
