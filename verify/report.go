package verify

import (
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// WriteReport renders r as a table, one row per variant.
func WriteReport(w io.Writer, r Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("limits [%d, %d)", r.From, r.To)

	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"variant", "checked", "failed"})
	for _, v := range r.Variants {
		t.AppendRow(table.Row{v.Name, v.Checked, v.Failed})
	}
	t.Render()
}
