// Package vocab turns document tables into flashcards.
package vocab

import (
	"fmt"

	"github.com/kpauljoseph/vocabankify/internal/docx"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

const (
	// FlashcardColumns is the vocabulary, annotation and translation layout.
	FlashcardColumns = 3
	headerRows       = 1
)

// RowError reports a table row that does not have the flashcard layout.
// Row is 1-based and counts the header.
type RowError struct {
	Row   int
	Cells int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d has %d cells, expected %d (vocabulary, annotation, translation)",
		e.Row, e.Cells, FlashcardColumns)
}

// ExtractFlashcards formats every row after the header. A table of N rows
// gives N-1 flashcards; the first row with the wrong number of cells stops
// the extraction.
func ExtractFlashcards(table docx.Table) ([]models.Flashcard, error) {
	if table.RowCount() <= headerRows {
		return nil, nil
	}

	flashcards := make([]models.Flashcard, 0, table.RowCount()-headerRows)
	for i, row := range table.Rows[headerRows:] {
		if len(row) != FlashcardColumns {
			return nil, &RowError{Row: i + headerRows + 1, Cells: len(row)}
		}
		flashcards = append(flashcards, Format(row[0], row[1], row[2]))
	}

	return flashcards, nil
}

// ExtractRows returns every row, header included, with its own cell count.
func ExtractRows(table docx.Table) [][]string {
	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// LoadFlashcards opens a document and extracts the flashcards of its first
// table.
func LoadFlashcards(path string) ([]models.Flashcard, error) {
	table, err := loadFirstTable(path)
	if err != nil {
		return nil, err
	}

	flashcards, err := ExtractFlashcards(table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return flashcards, nil
}

// LoadRows opens a document and returns all rows of its first table.
func LoadRows(path string) ([][]string, error) {
	table, err := loadFirstTable(path)
	if err != nil {
		return nil, err
	}
	return ExtractRows(table), nil
}

func loadFirstTable(path string) (docx.Table, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return docx.Table{}, err
	}

	table, err := doc.FirstTable()
	if err != nil {
		return docx.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
