package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.tuiHelper.HandleWindowSizeMsg(msg)
		m.tableComp = m.buildTable()
		return m, nil

	case tea.KeyMsg:
		// Filter input mode: keystrokes edit the filter until enter/esc.
		if m.filtering {
			switch msg.Type {
			case tea.KeyEnter:
				m.filtering = false
				m.filterInput.Blur()
				return m, nil
			case tea.KeyEsc:
				m.filtering = false
				m.filterInput.Blur()
				m.filterInput.SetValue("")
				m.applyFilter()
				m.tableComp = m.buildTable()
				return m, nil
			}

			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.applyFilter()
			m.tableComp = m.buildTable()
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filterInput.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tableComp, cmd = m.tableComp.Update(msg)
	return m, cmd
}
