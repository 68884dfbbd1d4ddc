package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	t "github.com/evertras/bubble-table/table"

	environmentservice "github.com/syspeek/syspeek/internal/services/environmentService"
	"github.com/syspeek/syspeek/internal/utils/terminal"
)

// BrowserModel is the interactive environment variable browser: a scrollable
// table of the process environment with incremental name filtering on '/'.
type BrowserModel struct {
	// full environment, loaded once at startup
	vars []environmentservice.Variable
	// subset matching the current filter
	filtered []environmentservice.Variable

	filterInput textinput.Model
	filtering   bool

	tableComp t.Model
	tuiHelper *terminal.ResponsiveTUIHelper
}

// NewBrowserModel builds the browser over the current process environment.
func NewBrowserModel() BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "Filter by name"
	ti.CharLimit = 128
	ti.Width = 40
	ti.Blur()

	vars := environmentservice.Variables()

	m := BrowserModel{
		vars:        vars,
		filtered:    vars,
		filterInput: ti,
		tuiHelper:   terminal.NewResponsiveTUIHelper(),
	}
	m.tableComp = m.buildTable()
	return m
}

// Run launches the browser and blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(NewBrowserModel(), tea.WithAltScreen()).Run()
	return err
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}
