package ui

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

const maxDialogWidth = 80

func dialogWidth(termWidth int) int {
	if termWidth <= 0 || termWidth > maxDialogWidth {
		return maxDialogWidth
	}
	return termWidth - 2
}
