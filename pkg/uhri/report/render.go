package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes t as an aligned text table preceded by its title.
func Render(w io.Writer, t *Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n", t.Title); err != nil {
			return err
		}
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Headers())
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	for i := range t.Rows {
		tw.Append(t.Strings(i))
	}
	tw.Render()
	return nil
}
