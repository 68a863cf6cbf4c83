package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpauljoseph/vocabankify/internal/importer"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

type advanceMsg struct {
	card models.Flashcard
	err  error
}

type finishMsg struct{}

type progressModel struct {
	title     string
	total     int
	processed int
	failed    int
	bar       progress.Model
	interrupt context.CancelFunc
	stopping  bool
}

func newProgressModel(title string, total int, interrupt context.CancelFunc) *progressModel {
	return &progressModel{
		title:     title,
		total:     total,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		interrupt: interrupt,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return nil
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(dialogWidth(msg.Width)-4, 50)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.interrupt != nil && !m.stopping {
			m.stopping = true
			m.interrupt()
		}
	case advanceMsg:
		m.processed++
		if msg.err != nil {
			m.failed++
			return m, tea.Println(errorStyle.Render(
				fmt.Sprintf("Failed to add flashcard: %s. Error: %v", msg.card.Vocabulary, msg.err)))
		}
		return m, tea.Println(okStyle.Render("Added flashcard: " + msg.card.Vocabulary))
	case finishMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m *progressModel) percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.processed) / float64(m.total)
}

func (m *progressModel) View() string {
	view := titleStyle.Render(m.title) + "\n"
	view += m.bar.ViewAs(m.percent()) + "\n"
	status := fmt.Sprintf("%d/%d", m.processed, m.total)
	if m.failed > 0 {
		status += errorStyle.Render(fmt.Sprintf("  (%d not added)", m.failed))
	}
	if m.stopping {
		status += helpStyle.Render("  stopping...")
	}
	return view + status + "\n"
}

// progressBar drives a progress program running next to the submit loop.
type progressBar struct {
	program  *tea.Program
	finished chan error
	once     sync.Once
}

func (s *Session) StartProgress(title string, total int) (importer.Progress, error) {
	program := s.newProgram(newProgressModel(title, total, s.interrupt))
	bar := &progressBar{
		program:  program,
		finished: make(chan error, 1),
	}

	go func() {
		_, err := program.Run()
		bar.finished <- err
	}()

	return bar, nil
}

func (b *progressBar) Advance(card models.Flashcard, err error) {
	b.program.Send(advanceMsg{card: card, err: err})
}

// Done stops the program and waits until the terminal is released.
func (b *progressBar) Done() {
	b.once.Do(func() {
		b.program.Send(finishMsg{})
		<-b.finished
	})
}
