package views

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// RenderTable writes rows as a plain table for non-interactive output.
func RenderTable(w io.Writer, rows []RowData, remaining int) {
	bold := color.New(color.Bold).SprintFunc()
	done := color.New(color.Faint, color.CrossedOut).SprintFunc()

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(no items)")
		_, _ = fmt.Fprintln(w, ItemsLeft(remaining))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Done"), bold("Text"))
	for _, row := range rows {
		box, text := boxUnchecked, row.Text
		if row.Completed {
			box, text = boxChecked, done(row.Text)
		}
		tbl.AddRow(row.ID, box, text)
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, ItemsLeft(remaining))
}
