package command

import (
	"fmt"

	"github.com/addrbook/addrbook-cli/internal/messages"
	"github.com/addrbook/addrbook-cli/internal/model"
	"github.com/addrbook/addrbook-cli/internal/person"
)

const FindCommandWord = "find"

const (
	findDescription = "Finds all contacts whose names contain ALL of the specified keywords " +
		"(case-insensitive) and displays them as a list with index numbers.\n"
	findExample = "Parameters: n/[name] ... t/[tag] ...\n" +
		"Note that users can opt for case-sensitive search on Tags by including the 'c/' flag " +
		"after the command word\n" +
		"Example: " + FindCommandWord + " n/alice n/bob t/friends t/colleagues"
)

const FindMessageUsage = FindCommandWord + ": " + findDescription + findExample

const CaseSensitiveFlagFormatMessage = "The case-sensitive flag `c/` must come right after the command word!\n" +
	"For example, rather than 'find n/NAME c/ t/TAG' or 'find n/NAME t/TAG c/', " +
	"it should be 'find c/ n/NAME t/TAG' instead."

// FindCommand narrows the model's filtered view to persons matching its predicate.
type FindCommand struct {
	predicate person.FindPredicate
}

func NewFindCommand(p person.FindPredicate) *FindCommand {
	return &FindCommand{predicate: p}
}

func (c *FindCommand) Predicate() person.FindPredicate { return c.predicate }

func (c *FindCommand) Execute(m model.Model) (Result, error) {
	if err := requireModel(m); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPersonList(c.predicate)
	return Result{Feedback: fmt.Sprintf(messages.PersonsListedOverview, len(m.FilteredPersonList()))}, nil
}

func (c *FindCommand) Equal(other Command) bool {
	o, ok := other.(*FindCommand)
	if !ok || o == nil || c == nil {
		return false
	}
	return c == o || c.predicate.Equal(o.predicate)
}
