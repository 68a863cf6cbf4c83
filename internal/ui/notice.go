package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type noticeModel struct {
	title   string
	message string
	width   int
	done    bool
}

func newNoticeModel(title, message string) *noticeModel {
	return &noticeModel{title: title, message: message}
}

func (m *noticeModel) Init() tea.Cmd {
	return nil
}

func (m *noticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// The notice stays on screen after it is dismissed.
func (m *noticeModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n" + m.message
	if !m.done {
		content += "\n\n" + helpStyle.Render("press any key to close")
	}
	return boxStyle.Width(dialogWidth(m.width)).Render(content) + "\n"
}
