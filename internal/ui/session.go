// Package ui holds the terminal dialogs of an import run.
//
// A Session owns the terminal streams. Every dialog is its own bubbletea
// program: it is created, shown until the user answers, and torn down before
// the method returns, so no UI state outlives a prompt.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

type Session struct {
	in        io.Reader
	out       io.Writer
	startDir  string
	interrupt context.CancelFunc
}

type SessionOption func(*Session)

// WithStartDir sets the directory the file picker opens in.
func WithStartDir(dir string) SessionOption {
	return func(s *Session) {
		s.startDir = dir
	}
}

// WithInterrupt is called when the user presses ctrl+c while flashcards are
// being submitted.
func WithInterrupt(cancel context.CancelFunc) SessionOption {
	return func(s *Session) {
		s.interrupt = cancel
	}
}

// NewSession creates a session on the given streams; nil means the
// process's stdin and stdout.
func NewSession(in io.Reader, out io.Writer, options ...SessionOption) *Session {
	s := &Session{
		in:       in,
		out:      out,
		startDir: ".",
	}
	if s.in == nil {
		s.in = os.Stdin
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if wd, err := os.Getwd(); err == nil {
		s.startDir = wd
	}

	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Session) newProgram(model tea.Model) *tea.Program {
	return tea.NewProgram(model, tea.WithInput(s.in), tea.WithOutput(s.out))
}

// show runs one dialog to completion and returns its final model.
func (s *Session) show(model tea.Model) (tea.Model, error) {
	final, err := s.newProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("dialog failed: %w", err)
	}
	return final, nil
}

func (s *Session) Confirm(title, message string) (bool, error) {
	final, err := s.show(newConfirmModel(title, message))
	if err != nil {
		return false, err
	}
	return final.(*confirmModel).confirmed, nil
}

func (s *Session) PickFile(title string, extensions []string) (string, error) {
	final, err := s.show(newFilePickerModel(title, extensions, s.startDir))
	if err != nil {
		return "", err
	}
	return final.(*filePickerModel).selected, nil
}

func (s *Session) AskString(title, prompt, initial string, suggestions []string) (string, error) {
	final, err := s.show(newPromptModel(title, prompt, initial, suggestions))
	if err != nil {
		return "", err
	}
	m := final.(*promptModel)
	if !m.submitted {
		return "", nil
	}
	return m.value, nil
}

func (s *Session) Notify(title, message string) error {
	_, err := s.show(newNoticeModel(title, message))
	return err
}
