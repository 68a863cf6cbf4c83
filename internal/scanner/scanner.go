package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/vocabankify/pkg/logger"
	"github.com/kpauljoseph/vocabankify/pkg/models"
	"github.com/kpauljoseph/vocabankify/pkg/utils"
)

var ErrNoDocuments = errors.New("no .docx files found")

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// FindDocuments walks dir recursively and returns every Word document in
// lexical order.
func (s *DirectoryScanner) FindDocuments(ctx context.Context, dir string) ([]models.DocumentFile, error) {
	var documents []models.DocumentFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if !utils.IsWordDocument(path) {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		s.logger.Debug("Found document (%d): %s", len(documents)+1, relPath)
		documents = append(documents, models.DocumentFile{
			AbsolutePath: absPath,
			RelativePath: relPath,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("%w in %s or its subdirectories", ErrNoDocuments, dir)
	}

	return documents, nil
}
