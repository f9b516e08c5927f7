package bench

import (
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// WriteTable renders results, one row per variant and case.
func WriteTable(w io.Writer, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"limit", "variant", "samples", "elapsed", "per op", "run"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.Case.Limit,
			r.Variant,
			r.Iterations,
			r.Span.Duration().String(),
			r.PerOp().String(),
			r.RunID.String(),
		})
	}
	t.Render()
}
