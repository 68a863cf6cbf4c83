package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

type filePickerModel struct {
	title    string
	picker   filepicker.Model
	selected string
	warning  string
	done     bool
}

func newFilePickerModel(title string, extensions []string, dir string) *filePickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = extensions
	fp.CurrentDirectory = dir
	fp.ShowPermissions = false

	return &filePickerModel{
		title:  title,
		picker: fp,
	}
}

func (m *filePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m *filePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selected = path
		m.done = true
		return m, tea.Quit
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.warning = filepath.Base(path) + " is not a Word document"
		return m, cmd
	}

	return m, cmd
}

func (m *filePickerModel) View() string {
	if m.done {
		return ""
	}

	view := titleStyle.Render(m.title) + "\n"
	view += helpStyle.Render(m.picker.CurrentDirectory) + "\n\n"
	view += m.picker.View() + "\n"
	if m.warning != "" {
		view += errorStyle.Render(m.warning) + "\n"
	}
	view += helpStyle.Render("[enter] open/select  [backspace] up  [q] cancel")
	return view
}
