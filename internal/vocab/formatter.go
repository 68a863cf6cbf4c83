package vocab

import (
	"strings"

	"github.com/kpauljoseph/vocabankify/pkg/models"
)

// Format normalizes the three cells of a vocabulary row. The annotation is
// wrapped in parentheses when it has content and dropped otherwise.
func Format(vocabulary, annotation, translation string) models.Flashcard {
	annotation = strings.TrimSpace(annotation)
	if annotation != "" {
		annotation = "(" + annotation + ")"
	}

	return models.Flashcard{
		Vocabulary:  strings.TrimSpace(vocabulary),
		Annotation:  annotation,
		Translation: strings.TrimSpace(translation),
	}
}
