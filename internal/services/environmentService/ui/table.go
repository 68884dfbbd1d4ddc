package ui

import (
	"strings"

	t "github.com/evertras/bubble-table/table"
)

const (
	colName  = "name"
	colValue = "value"
)

// buildTable lays out the variable table for the current terminal width.
func (m BrowserModel) buildTable() t.Model {
	width, height := m.tuiHelper.GetSize()

	nameWidth := width / 3
	if nameWidth < 16 {
		nameWidth = 16
	}
	valueWidth := width - nameWidth - 6
	if valueWidth < 20 {
		valueWidth = 20
	}

	cols := []t.Column{
		t.NewColumn(colName, "Name", nameWidth),
		t.NewColumn(colValue, "Value", valueWidth),
	}

	rows := make([]t.Row, 0, len(m.filtered))
	for _, v := range m.filtered {
		rows = append(rows, t.NewRow(t.RowData{
			colName:  v.Name,
			colValue: v.Value,
		}))
	}

	pageSize := height - 9
	if pageSize < 5 {
		pageSize = 5
	}

	return t.New(cols).
		WithRows(rows).
		WithPageSize(pageSize).
		Focused(true)
}

// applyFilter narrows the variable list to names containing the filter text,
// case-insensitively. An empty filter restores the full environment.
func (m *BrowserModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.filtered = m.vars
		return
	}

	m.filtered = m.filtered[:0:0]
	for _, v := range m.vars {
		if strings.Contains(strings.ToLower(v.Name), query) {
			m.filtered = append(m.filtered, v)
		}
	}
}
