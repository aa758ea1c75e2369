package command

import (
	"strings"

	"github.com/addrbook/addrbook-cli/internal/messages"
	"github.com/addrbook/addrbook-cli/internal/model"
)

const (
	HelpCommandWord = "help"
	ExitCommandWord = "exit"
)

const (
	HelpMessageUsage = HelpCommandWord + ": Shows usage for every command.\nExample: " + HelpCommandWord
	ExitMessageUsage = ExitCommandWord + ": Exits the program.\nExample: " + ExitCommandWord
)

// Words lists every command word the parser accepts.
var Words = []string{FindCommandWord, ListCommandWord, HelpCommandWord, ExitCommandWord}

// Usage joins the usage text of all commands.
func Usage() string {
	return strings.Join([]string{FindMessageUsage, ListMessageUsage, HelpMessageUsage, ExitMessageUsage}, "\n\n")
}

// HelpCommand and ExitCommand do not touch the model, so a nil model is fine.
type HelpCommand struct{}

func (HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: Usage(), ShowHelp: true}, nil
}

func (HelpCommand) Equal(other Command) bool {
	_, ok := other.(HelpCommand)
	return ok
}

type ExitCommand struct{}

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: messages.Exiting, Exit: true}, nil
}

func (ExitCommand) Equal(other Command) bool {
	_, ok := other.(ExitCommand)
	return ok
}
