package utils

import (
	"path/filepath"
	"strings"
)

const DocxExtension = ".docx"

// IsWordDocument reports whether name looks like a .docx file that Word
// itself wrote. Owner files ("~$name.docx") that Word keeps next to open
// documents are not documents.
func IsWordDocument(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, "~$") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), DocxExtension)
}

// TrimExtension returns the file name without directory and extension.
func TrimExtension(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
