package command

import (
	"github.com/addrbook/addrbook-cli/internal/messages"
	"github.com/addrbook/addrbook-cli/internal/model"
	"github.com/addrbook/addrbook-cli/internal/person"
)

const ListCommandWord = "list"

const ListMessageUsage = ListCommandWord + ": Lists all contacts in the address book.\nExample: " + ListCommandWord

type ListCommand struct{}

func (ListCommand) Execute(m model.Model) (Result, error) {
	if err := requireModel(m); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPersonList(person.ShowAll)
	return Result{Feedback: messages.ListedAllPersons}, nil
}

func (ListCommand) Equal(other Command) bool {
	_, ok := other.(ListCommand)
	return ok
}
