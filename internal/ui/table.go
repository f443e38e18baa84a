package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns. Headers are uppercased
// and empty cells render as "-" so optional manifest fields (version,
// requires-python) keep the columns readable. Styling the cells through
// lipgloss is deliberately avoided: tabwriter aligns on byte counts and
// ANSI escapes would skew the columns.
type Table struct {
	w       *tabwriter.Writer
	headers []string
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	t := &Table{w: tw, headers: headers}
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(upper, "\t"))
	return t
}

// Row appends a row of values. The number of values should match the number
// of headers. Empty values render as "-".
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		s := fmt.Sprintf("%v", v)
		if s == "" {
			s = "-"
		}
		parts[i] = s
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
