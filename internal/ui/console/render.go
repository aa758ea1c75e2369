package console

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/addrbook/addrbook-cli/internal/person"
)

func renderPersons(persons []person.Person, style table.Style) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"#", "Name", "Phone", "Email", "Address", "Tags"})
	for i, p := range persons {
		tags := "-"
		if len(p.Tags) > 0 {
			tags = text.FgCyan.Sprint(strings.Join(p.TagStrings(), ", "))
		}
		tw.AppendRow(table.Row{i + 1, p.Name, dash(p.Phone), dash(p.Email), dash(p.Address), tags})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
