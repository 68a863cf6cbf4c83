package models

// Flashcard is one vocabulary row ready to be sent to Anki.
// Annotation is either empty or already wrapped in parentheses.
type Flashcard struct {
	Vocabulary  string `json:"vocabulary"`
	Annotation  string `json:"annotation"`
	Translation string `json:"translation"`
}

// Front is the question side: vocabulary, a space and the annotation.
// The space is kept even when the annotation is empty.
func (f Flashcard) Front() string {
	return f.Vocabulary + " " + f.Annotation
}

func (f Flashcard) Back() string {
	return f.Translation
}

// DocumentFile is a document found on disk. RelativePath is relative to the
// directory that was scanned.
type DocumentFile struct {
	AbsolutePath string
	RelativePath string
}
