package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 5

// RankSuggestions returns up to limit names, best fuzzy match for query
// first. An empty query keeps the original order.
func RankSuggestions(query string, names []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		if len(names) > limit {
			return append([]string(nil), names[:limit]...)
		}
		return append([]string(nil), names...)
	}

	matches := fuzzy.Find(query, names)
	ranked := make([]string, 0, min(limit, len(matches)))
	for _, match := range matches {
		if len(ranked) == limit {
			break
		}
		ranked = append(ranked, match.Str)
	}
	return ranked
}

type promptModel struct {
	title       string
	prompt      string
	input       textinput.Model
	suggestions []string
	matches     []string
	// index into matches, -1 when the typed text is used as is
	cursor    int
	width     int
	value     string
	submitted bool
	done      bool
}

func newPromptModel(title, prompt, initial string, suggestions []string) *promptModel {
	ti := textinput.New()
	ti.Placeholder = "Deck name"
	ti.CharLimit = 256
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	m := &promptModel{
		title:       title,
		prompt:      prompt,
		input:       ti,
		suggestions: suggestions,
		cursor:      -1,
	}
	m.refresh()
	return m
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.value = m.input.Value()
			if m.cursor >= 0 && m.cursor < len(m.matches) {
				m.value = m.matches[m.cursor]
			}
			m.submitted = true
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "tab":
			if len(m.matches) > 0 {
				m.input.SetValue(m.matches[max(m.cursor, 0)])
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil
		case "up":
			if m.cursor >= 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	previous := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.refresh()
	}
	return m, cmd
}

func (m *promptModel) refresh() {
	m.matches = RankSuggestions(m.input.Value(), m.suggestions, maxSuggestions)
	m.cursor = -1
}

func (m *promptModel) View() string {
	if m.done {
		return ""
	}

	content := titleStyle.Render(m.title) + "\n\n" + m.prompt + "\n" + m.input.View() + "\n"

	if len(m.matches) > 0 {
		content += "\n" + helpStyle.Render("Existing decks:") + "\n"
		for i, name := range m.matches {
			if i == m.cursor {
				content += selectedStyle.Render("> "+name) + "\n"
			} else {
				content += suggestionStyle.Render("  "+name) + "\n"
			}
		}
	}

	content += "\n" + helpStyle.Render("[enter] confirm  [tab] complete  [up/down] choose  [esc] cancel")
	return boxStyle.Width(dialogWidth(m.width)).Render(content)
}
