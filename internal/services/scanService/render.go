package scanservice

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable renders scan results as a terminal table.
func RenderTable(results []Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"File", "File Version", "Product", "Product Version", "Company"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.Path,
			r.FileVersion,
			r.ProductName,
			r.ProductVersion,
			r.CompanyName,
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d binaries", len(results)), "", "", "", ""})

	return t.Render()
}
