// Package importer runs the document to Anki pipeline: confirm, pick the
// document, pick the deck, extract, ensure the deck, submit, report.
package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/vocabankify/internal/anki"
	"github.com/kpauljoseph/vocabankify/internal/scanner"
	"github.com/kpauljoseph/vocabankify/internal/vocab"
	"github.com/kpauljoseph/vocabankify/pkg/logger"
	"github.com/kpauljoseph/vocabankify/pkg/models"
	"github.com/kpauljoseph/vocabankify/pkg/utils"
)

const Instructions = "This tool imports flashcards from a Word document into Anki.\n\n" +
	"1. You'll first be prompted to select a .docx file.\n" +
	"2. Next, you'll specify the name of the Anki deck to add cards to.\n\n" +
	"The first table of the document is read: vocabulary, optional annotation\n" +
	"and translation columns, with a header row.\n\n" +
	"Ensure Anki is running with AnkiConnect installed.\n" +
	"To install AnkiConnect, open Anki, go to Tools->Add-ons->Get Add-ons\n" +
	"and enter the code 2055492159."

var ErrCancelled = errors.New("cancelled by user")

// CancelError carries the message shown when the user backs out of a prompt.
type CancelError struct {
	Message string
}

func (e *CancelError) Error() string {
	return e.Message
}

func (e *CancelError) Is(target error) bool {
	return target == ErrCancelled
}

func cancelled(message string) error {
	return &CancelError{Message: message}
}

// DeckClient is the part of AnkiConnect the pipeline needs.
type DeckClient interface {
	CheckConnection(ctx context.Context) error
	DeckNames(ctx context.Context) ([]string, error)
	EnsureDeck(ctx context.Context, deckName string) (bool, error)
	AddAllFlashcards(ctx context.Context, deckName string, cards []models.Flashcard, report *anki.ProcessingReport, progress anki.ProgressFunc) error
}

// Progress advances once per submitted flashcard, whatever the outcome.
type Progress interface {
	Advance(card models.Flashcard, err error)
	Done()
}

// Prompter shows the dialogs of one run. Cancelling a prompt returns the
// zero value and a nil error.
type Prompter interface {
	Confirm(title, message string) (bool, error)
	PickFile(title string, extensions []string) (string, error)
	AskString(title, prompt, initial string, suggestions []string) (string, error)
	StartProgress(title string, total int) (Progress, error)
	Notify(title, message string) error
}

type Request struct {
	FilePath  string
	DeckName  string
	RootDeck  string
	AssumeYes bool
}

type Importer struct {
	client   DeckClient
	prompter Prompter
	log      *logger.Logger
}

func New(client DeckClient, prompter Prompter, log *logger.Logger) *Importer {
	return &Importer{
		client:   client,
		prompter: prompter,
		log:      log,
	}
}

func (i *Importer) Run(ctx context.Context, req Request) (*anki.ProcessingReport, error) {
	if !req.AssumeYes {
		proceed, err := i.prompter.Confirm("Instructions", Instructions)
		if err != nil {
			return nil, err
		}
		if !proceed {
			return nil, cancelled("User opted to exit. Exiting.")
		}
	}

	path := req.FilePath
	if path == "" {
		selected, err := i.prompter.PickFile("Select a Word document", []string{utils.DocxExtension})
		if err != nil {
			return nil, err
		}
		if selected == "" {
			return nil, cancelled("No file selected. Exiting.")
		}
		path = selected
	}

	i.log.Debug("Checking Anki connection...")
	if err := i.client.CheckConnection(ctx); err != nil {
		return nil, err
	}

	deckName := strings.TrimSpace(req.DeckName)
	if deckName == "" {
		answer, err := i.promptDeckName(ctx, req.RootDeck, path)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, cancelled("No deck name provided. Exiting.")
		}
		deckName = answer
	}

	report := anki.NewProcessingReport()
	if err := i.importDocument(ctx, path, deckName, report); err != nil {
		report.Finish()
		return report, err
	}
	report.Finish()
	report.Print(i.log)

	if err := i.prompter.Notify("Completed", report.Summary()); err != nil {
		i.log.Debug("Failed to show completion notice: %v", err)
	}

	return report, nil
}

func (i *Importer) promptDeckName(ctx context.Context, rootDeck, path string) (string, error) {
	existing, err := i.client.DeckNames(ctx)
	if err != nil {
		i.log.Debug("Could not list decks for suggestions: %v", err)
		existing = nil
	}

	answer, err := i.prompter.AskString(
		"Deck",
		"Please specify the name of the Anki deck you want to add cards to:",
		anki.GetDeckNameFromPath(rootDeck, filepath.Base(path)),
		existing,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// RunBatch imports every document under dir, each into the deck named after
// its path. A document that fails is logged and the others still run.
func (i *Importer) RunBatch(ctx context.Context, dir, rootDeck string) (*anki.ProcessingReport, error) {
	documents, err := scanner.New(i.log).FindDocuments(ctx, dir)
	if err != nil {
		return nil, err
	}
	i.log.Info("Found %d documents to import", len(documents))

	if err := i.client.CheckConnection(ctx); err != nil {
		return nil, err
	}
	i.log.Info("Successfully connected to Anki")

	report := anki.NewProcessingReport()
	var failed int
	for _, doc := range documents {
		if err := ctx.Err(); err != nil {
			report.Finish()
			return report, err
		}

		deckName := anki.GetDeckNameFromPath(rootDeck, doc.RelativePath)
		i.log.Info("Importing %s into %s", doc.RelativePath, deckName)
		if err := i.importDocument(ctx, doc.AbsolutePath, deckName, report); err != nil {
			if errors.Is(err, context.Canceled) {
				report.Finish()
				return report, err
			}
			i.log.Error("Error importing %s: %v", doc.RelativePath, err)
			failed++
		}
	}

	report.Finish()
	report.Print(i.log)

	if failed > 0 {
		return report, fmt.Errorf("failed to import %d out of %d documents", failed, len(documents))
	}
	return report, nil
}

func (i *Importer) importDocument(ctx context.Context, path, deckName string, report *anki.ProcessingReport) error {
	cards, err := vocab.LoadFlashcards(path)
	if err != nil {
		return err
	}
	report.ProcessedDocuments++
	report.TotalFlashcards += len(cards)
	i.log.Info("Found %d flashcards in %s", len(cards), path)

	if len(cards) == 0 {
		i.log.Warn("No flashcards in %s, nothing to import", path)
		return nil
	}

	if _, err := i.client.EnsureDeck(ctx, deckName); err != nil {
		return err
	}

	progress, err := i.prompter.StartProgress("Adding Flashcards...", len(cards))
	if err != nil {
		return err
	}
	err = i.client.AddAllFlashcards(ctx, deckName, cards, report, progress.Advance)
	progress.Done()

	return err
}
