package ui

import (
	"github.com/kpauljoseph/vocabankify/internal/importer"
	"github.com/kpauljoseph/vocabankify/pkg/logger"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

// Headless answers dialogs without a terminal UI. Nothing can be picked, so
// the file must be given up front; the deck falls back to the suggested
// name.
type Headless struct {
	log       *logger.Logger
	assumeYes bool
}

func NewHeadless(log *logger.Logger, assumeYes bool) *Headless {
	return &Headless{log: log, assumeYes: assumeYes}
}

func (h *Headless) Confirm(title, message string) (bool, error) {
	if !h.assumeYes {
		h.log.Info("%s: confirmation required, run with --yes to proceed without a terminal UI", title)
	}
	return h.assumeYes, nil
}

func (h *Headless) PickFile(title string, extensions []string) (string, error) {
	h.log.Info("%s: no document given", title)
	return "", nil
}

func (h *Headless) AskString(title, prompt, initial string, suggestions []string) (string, error) {
	if initial != "" {
		h.log.Info("Using deck: %s", initial)
	}
	return initial, nil
}

func (h *Headless) StartProgress(title string, total int) (importer.Progress, error) {
	h.log.Info("%s (%d flashcards)", title, total)
	return &logProgress{log: h.log, total: total}, nil
}

func (h *Headless) Notify(title, message string) error {
	h.log.Info("%s: %s", title, message)
	return nil
}

type logProgress struct {
	log       *logger.Logger
	total     int
	processed int
}

func (p *logProgress) Advance(card models.Flashcard, err error) {
	p.processed++
	p.log.Debug("Progress %d/%d: %s", p.processed, p.total, card.Vocabulary)
}

func (p *logProgress) Done() {
	p.log.Debug("Processed %d/%d flashcards", p.processed, p.total)
}
