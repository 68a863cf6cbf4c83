package anki

import (
	"fmt"
	"time"

	"github.com/kpauljoseph/vocabankify/pkg/logger"
)

// CardIssue is a flashcard Anki did not take, and why.
type CardIssue struct {
	DeckName   string
	Vocabulary string
	Reason     string
}

type ProcessingReport struct {
	StartTime          time.Time
	EndTime            time.Time
	ProcessedDocuments int
	TotalFlashcards    int
	AddedCount         int
	SkippedCount       int
	FailedCount        int
	SkippedCards       []CardIssue
	FailedCards        []CardIssue
}

func NewProcessingReport() *ProcessingReport {
	return &ProcessingReport{StartTime: time.Now()}
}

func (r *ProcessingReport) Finish() {
	r.EndTime = time.Now()
}

func (r *ProcessingReport) TimeTaken() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime).Round(time.Millisecond)
	}
	return r.EndTime.Sub(r.StartTime).Round(time.Millisecond)
}

// Summary is the short text shown when an import completes.
func (r *ProcessingReport) Summary() string {
	if r.SkippedCount == 0 && r.FailedCount == 0 {
		return fmt.Sprintf("All %d flashcards have been successfully added to Anki!", r.AddedCount)
	}
	return fmt.Sprintf("Added %d of %d flashcards to Anki (%d duplicates skipped, %d failed).",
		r.AddedCount, r.TotalFlashcards, r.SkippedCount, r.FailedCount)
}

func (r *ProcessingReport) Print(log *logger.Logger) {
	processingCompleteBanner := `
+------------------------------------------------------------------------------+
|                           PROCESSING COMPLETE                                |
+------------------------------------------------------------------------------+`

	log.Info("%s", processingCompleteBanner)
	log.Info("- Documents processed: %d", r.ProcessedDocuments)
	log.Info("- Flashcards found: %d", r.TotalFlashcards)
	log.Info("- Cards added: %d", r.AddedCount)
	log.Info("- Cards skipped: %d", r.SkippedCount)
	log.Info("- Cards failed: %d", r.FailedCount)
	log.Info("- Time taken: %v", r.TimeTaken())

	for _, card := range r.SkippedCards {
		log.Info("- skipped %s (%s): %s", card.Vocabulary, card.DeckName, card.Reason)
	}
	for _, card := range r.FailedCards {
		log.Info("- failed %s (%s): %s", card.Vocabulary, card.DeckName, card.Reason)
	}
}
