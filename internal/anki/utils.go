package anki

import (
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/vocabankify/pkg/utils"
)

const (
	ANKI_CONNECT_VERSION = 6
	DeckSeparator        = "::"
)

// GetDeckNameFromPath maps a document path, relative to the scanned
// directory, to a nested deck: "lessons/week1.docx" with root "Japanese"
// becomes "Japanese::lessons::week1".
func GetDeckNameFromPath(rootPrefix string, relativePath string) string {
	dirPath := filepath.Dir(relativePath)
	if dirPath == "." {
		dirPath = ""
	}

	var parts []string

	if rootPrefix = strings.TrimSpace(rootPrefix); rootPrefix != "" {
		parts = append(parts, rootPrefix)
	}

	if dirPath != "" {
		for _, part := range strings.Split(filepath.ToSlash(dirPath), "/") {
			if part != "" {
				parts = append(parts, part)
			}
		}
	}

	parts = append(parts, utils.TrimExtension(relativePath))

	return strings.Join(parts, DeckSeparator)
}
