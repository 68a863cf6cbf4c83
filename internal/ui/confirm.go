package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	title     string
	message   string
	width     int
	confirmed bool
	done      bool
}

func newConfirmModel(title, message string) *confirmModel {
	return &confirmModel{title: title, message: message}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "esc", "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	if m.done {
		return ""
	}

	content := titleStyle.Render(m.title) + "\n\n" + m.message + "\n\n"
	content += okStyle.Render("[y/enter]") + " Continue  "
	content += errorStyle.Render("[n/esc]") + " Exit"

	return boxStyle.Width(dialogWidth(m.width)).Render(content)
}
