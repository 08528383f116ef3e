package registermember

const (
	commandType = "RegisterMember"
)

// Command represents the intent to register a new member account.
type Command struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(name string, email string, phone string, address string) Command {
	return Command{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}
}
