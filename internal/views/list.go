package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type RowData struct {
	ID        string
	Text      string
	Completed bool
	Selected  bool
}

type ListData struct {
	Rows      []RowData
	Remaining int
	Focused   bool
}

const (
	boxChecked   = "[x]"
	boxUnchecked = "[ ]"
)

var (
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

// ItemsLeft is the summary line under the list.
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// RenderList draws every row and the summary from scratch.
func RenderList(data ListData) string {
	var b strings.Builder
	if len(data.Rows) == 0 {
		b.WriteString(mutedStyle.Render("(no items)") + "\n")
	}
	for _, row := range data.Rows {
		b.WriteString(renderRow(row, data.Focused) + "\n")
	}
	b.WriteString("\n" + ItemsLeft(data.Remaining))
	return b.String()
}

func renderRow(row RowData, focused bool) string {
	cursor := " "
	if row.Selected && focused {
		cursor = selectedStyle.Render(">")
	}
	box := mutedStyle.Render(boxUnchecked)
	text := row.Text
	if row.Completed {
		box = checkStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	} else if row.Selected && focused {
		text = selectedStyle.Render(text)
	}
	return fmt.Sprintf("%s %s %s", cursor, box, text)
}
