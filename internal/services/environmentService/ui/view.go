package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Environment Variables"))
	b.WriteString(fmt.Sprintf("  %d/%d\n\n", len(m.filtered), len(m.vars)))

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.tableComp.View())
	b.WriteString("\n")

	help := "↑/↓ scroll • / filter • q quit"
	if m.filtering {
		help = "enter apply • esc clear"
	}
	b.WriteString(m.tuiHelper.CreateResponsiveHelpLine(help, helpStyle))

	return b.String()
}
