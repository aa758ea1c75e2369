package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/addrbook/addrbook-cli/internal/model"
	"github.com/addrbook/addrbook-cli/internal/person"
)

func newTestUI(lines ...string) (*ConsoleUI, *bytes.Buffer, *model.Manager) {
	m := model.New([]person.Person{
		{Name: "Alice", Phone: "9111", Tags: []person.Tag{"friends"}},
		{Name: "Bob", Tags: []person.Tag{"work"}},
		{Name: "Carol", Email: "carol@example.com"},
	})
	var out bytes.Buffer
	ask := func(string) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
	return NewConsoleUI(m, "light").WithOutput(&out).WithAsk(ask), &out, m
}

func TestRunInput_FindPrintsCountAndTable(t *testing.T) {
	ui, out, m := newTestUI()
	res, err := ui.RunInput("find n/a")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Feedback != "2 persons listed!" {
		t.Fatalf("unexpected feedback: %q", res.Feedback)
	}
	s := out.String()
	if !strings.Contains(s, "2 persons listed!") || !strings.Contains(s, "Alice") || !strings.Contains(s, "Carol") {
		t.Fatalf("output missing result or rows: %q", s)
	}
	if strings.Contains(s, "Bob") {
		t.Fatalf("Bob should be filtered out: %q", s)
	}
	if len(m.FilteredPersonList()) != 2 {
		t.Fatalf("model view not updated")
	}
}

func TestRunInput_ZeroMatchesNoTable(t *testing.T) {
	ui, out, _ := newTestUI()
	if _, err := ui.RunInput("find t/nobody"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out.String(), "0 persons listed!") {
		t.Fatalf("want zero message, got %q", out.String())
	}
	if strings.Contains(out.String(), "Name") {
		t.Fatalf("no table expected for empty view: %q", out.String())
	}
}

func TestShell_LoopsUntilExit(t *testing.T) {
	ui, out, m := newTestUI("find t/work", "bogus", "", "list", "exit", "find n/never")
	if err := ui.Shell(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "1 persons listed!") {
		t.Fatalf("find output missing: %q", s)
	}
	if !strings.Contains(s, "Unknown command") {
		t.Fatalf("parse error should be shown and loop continue: %q", s)
	}
	if !strings.Contains(s, "Listed all persons") {
		t.Fatalf("list output missing: %q", s)
	}
	if !strings.Contains(s, "Exiting") {
		t.Fatalf("exit message missing: %q", s)
	}
	if len(m.FilteredPersonList()) != 3 {
		t.Fatalf("commands after exit must not run")
	}
}

func TestShell_EOFEndsQuietly(t *testing.T) {
	ui, _, _ := newTestUI("help")
	if err := ui.Shell(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestShell_InputErrorPropagates(t *testing.T) {
	ui, _, _ := newTestUI()
	boom := errors.New("boom")
	ui.ask = func(string) (string, error) { return "", boom }
	if err := ui.Shell(); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestPromptFind(t *testing.T) {
	ui, out, _ := newTestUI("c/ t/friends")
	if err := ui.PromptFind(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out.String(), "1 persons listed!") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	ui, _, _ = newTestUI("t/friends c/")
	if err := ui.PromptFind(); err == nil {
		t.Fatalf("misplaced c/ should fail")
	}
}

func TestRenderPersons_Dashes(t *testing.T) {
	out := renderPersons([]person.Person{{Name: "Dan"}}, StyleByName("rounded"))
	if !strings.Contains(out, "Dan") || !strings.Contains(out, "-") {
		t.Fatalf("unexpected render: %q", out)
	}
}
