package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/addrbook/addrbook-cli/internal/command"
	"github.com/addrbook/addrbook-cli/internal/logging"
	"github.com/addrbook/addrbook-cli/internal/model"
	"github.com/addrbook/addrbook-cli/internal/parser"
)

// AskFunc reads one line of input after showing message.
type AskFunc func(message string) (string, error)

type ConsoleUI struct {
	m     model.Model
	out   io.Writer
	style table.Style
	ask   AskFunc
}

func NewConsoleUI(m model.Model, styleName string) *ConsoleUI {
	return &ConsoleUI{m: m, out: os.Stdout, style: StyleByName(styleName), ask: surveyAsk}
}

func (c *ConsoleUI) WithOutput(out io.Writer) *ConsoleUI {
	c.out = out
	return c
}

// WithAsk replaces the interactive prompt, e.g. with scripted input.
func (c *ConsoleUI) WithAsk(ask AskFunc) *ConsoleUI {
	c.ask = ask
	return c
}

func surveyAsk(message string) (string, error) {
	var s string
	if err := survey.AskOne(&survey.Input{Message: message}, &s); err != nil {
		return "", err
	}
	return s, nil
}

func StyleByName(name string) table.Style {
	switch name {
	case "rounded":
		return table.StyleRounded
	case "bold":
		return table.StyleBold
	case "double":
		return table.StyleDouble
	case "default":
		return table.StyleDefault
	default:
		return table.StyleLight
	}
}

// Run executes c against the model and prints its feedback followed by the
// filtered view.
func (c *ConsoleUI) Run(cmd command.Command) (command.Result, error) {
	res, err := cmd.Execute(c.m)
	if err != nil {
		return res, err
	}
	logging.Debug(fmt.Sprintf("executed %T: %s", cmd, res.Feedback))
	if res.ShowHelp || res.Exit {
		fmt.Fprintln(c.out, res.Feedback)
		return res, nil
	}
	fmt.Fprintln(c.out, text.FgGreen.Sprint(res.Feedback))
	if view := c.m.FilteredPersonList(); len(view) > 0 {
		fmt.Fprint(c.out, renderPersons(view, c.style))
	}
	return res, nil
}

// RunInput parses one line and runs it. Parse errors are returned as is so
// callers can show the usage message.
func (c *ConsoleUI) RunInput(line string) (command.Result, error) {
	cmd, err := parser.ParseCommand(line)
	if err != nil {
		return command.Result{}, err
	}
	return c.Run(cmd)
}

// PromptFind asks for find arguments when none were given on the command line.
func (c *ConsoleUI) PromptFind() error {
	args, err := c.ask("Search (e.g. n/alice t/friends):")
	if err != nil {
		return err
	}
	cmd, err := parser.ParseFind(" " + strings.TrimSpace(args))
	if err != nil {
		return err
	}
	_, err = c.Run(cmd)
	return err
}

// Shell reads commands until exit or interrupt. Each command runs to
// completion before the next line is read.
func (c *ConsoleUI) Shell() error {
	fmt.Fprintln(c.out, text.Bold.Sprint("Address book")+" (type 'help' for commands)")
	for {
		line, err := c.ask(">")
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := c.RunInput(line)
		if err != nil {
			var pe *parser.Error
			if errors.As(err, &pe) {
				fmt.Fprintln(c.out, text.FgRed.Sprint(pe.Message))
				continue
			}
			return err
		}
		if res.Exit {
			return nil
		}
	}
}
