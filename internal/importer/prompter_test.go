package importer_test

import (
	"github.com/kpauljoseph/vocabankify/internal/importer"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

// scriptedPrompter answers every dialog from its fields and records what it
// was asked.
type scriptedPrompter struct {
	confirm bool
	file    string
	deck    string

	calls            []string
	askedInitial     string
	askedSuggestions []string
	progress         []*recordingProgress
	notices          []string
}

func (p *scriptedPrompter) Confirm(title, message string) (bool, error) {
	p.calls = append(p.calls, "confirm")
	return p.confirm, nil
}

func (p *scriptedPrompter) PickFile(title string, extensions []string) (string, error) {
	p.calls = append(p.calls, "file")
	return p.file, nil
}

func (p *scriptedPrompter) AskString(title, prompt, initial string, suggestions []string) (string, error) {
	p.calls = append(p.calls, "deck")
	p.askedInitial = initial
	p.askedSuggestions = suggestions
	return p.deck, nil
}

func (p *scriptedPrompter) StartProgress(title string, total int) (importer.Progress, error) {
	p.calls = append(p.calls, "progress")
	progress := &recordingProgress{total: total}
	p.progress = append(p.progress, progress)
	return progress, nil
}

func (p *scriptedPrompter) Notify(title, message string) error {
	p.calls = append(p.calls, "notify")
	p.notices = append(p.notices, message)
	return nil
}

type recordingProgress struct {
	total    int
	advanced []string
	failures int
	done     bool
}

func (r *recordingProgress) Advance(card models.Flashcard, err error) {
	r.advanced = append(r.advanced, card.Vocabulary)
	if err != nil {
		r.failures++
	}
}

func (r *recordingProgress) Done() {
	r.done = true
}
