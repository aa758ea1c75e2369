package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/addrbook/addrbook-cli/internal/command"
	"github.com/addrbook/addrbook-cli/internal/logging"
	"github.com/addrbook/addrbook-cli/internal/messages"
	"github.com/addrbook/addrbook-cli/internal/person"
)

// maxSuggestDistance bounds how far a typo may be from a command word before
// we stop suggesting it.
const maxSuggestDistance = 2

// Error is a user-facing parse failure; Message is shown verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalidFormat(usage string) error {
	return &Error{Message: fmt.Sprintf(messages.InvalidCommandFormat, usage)}
}

// ParseCommand turns one line of user input into a command.
func ParseCommand(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidFormat(command.HelpMessageUsage)
	}
	word, args := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		word, args = input[:i], input[i:]
	}
	logging.Debug(fmt.Sprintf("parse: word=%q args=%q", word, args))
	switch word {
	case command.FindCommandWord:
		return ParseFind(args)
	case command.ListCommandWord:
		return command.ListCommand{}, nil
	case command.HelpCommandWord:
		return command.HelpCommand{}, nil
	case command.ExitCommandWord:
		return command.ExitCommand{}, nil
	}
	msg := messages.UnknownCommand
	if s := suggest(word); s != "" {
		msg += ". " + fmt.Sprintf(messages.DidYouMean, s)
	}
	return nil, &Error{Message: msg}
}

// ParseFind parses the arguments after the find command word:
// [c/] n/NAME... t/TAG...
func ParseFind(args string) (*command.FindCommand, error) {
	am := Tokenize(args, PrefixCaseSensitive, PrefixName, PrefixTag)
	if am.Preamble != "" {
		return nil, invalidFormat(command.FindMessageUsage)
	}

	caseSensitive := false
	for i, p := range am.Order() {
		if p != PrefixCaseSensitive {
			continue
		}
		if i != 0 || caseSensitive {
			return nil, &Error{Message: command.CaseSensitiveFlagFormatMessage}
		}
		caseSensitive = true
	}
	for _, v := range am.AllValues(PrefixCaseSensitive) {
		if v != "" {
			return nil, invalidFormat(command.FindMessageUsage)
		}
	}

	names := am.AllValues(PrefixName)
	tags := am.AllValues(PrefixTag)
	if len(names) == 0 && len(tags) == 0 {
		return nil, invalidFormat(command.FindMessageUsage)
	}
	for _, kw := range append(append([]string(nil), names...), tags...) {
		if strings.TrimSpace(kw) == "" {
			return nil, invalidFormat(command.FindMessageUsage)
		}
	}
	return command.NewFindCommand(person.NewFindPredicate(names, tags, caseSensitive)), nil
}

func suggest(word string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, w := range command.Words {
		d := levenshtein.ComputeDistance(strings.ToLower(word), w)
		if d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}
