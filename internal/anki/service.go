package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/kpauljoseph/vocabankify/internal/config"
	"github.com/kpauljoseph/vocabankify/pkg/logger"
	"github.com/kpauljoseph/vocabankify/pkg/models"
)

const (
	DefaultAnkiConnectURL = config.DefaultAnkiConnectURL
	DefaultTimeout        = config.DefaultTimeout
)

var ErrAnkiUnavailable = errors.New("could not connect to Anki")

// APIError is a non-null "error" field in an AnkiConnect response.
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anki error on %s: %s", e.Action, e.Message)
}

// IsDuplicate reports whether err is AnkiConnect refusing a note that
// already exists.
func IsDuplicate(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "duplicate")
}

type Service struct {
	ankiConnectURL string
	client         *http.Client
	modelName      string
	frontField     string
	backField      string
	tags           []string
	logger         *logger.Logger
}

type Option func(*Service)

func WithURL(url string) Option {
	return func(s *Service) {
		s.ankiConnectURL = url
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.client = &http.Client{Timeout: timeout}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithNoteType selects the note type and the names of its question and
// answer fields.
func WithNoteType(modelName, frontField, backField string) Option {
	return func(s *Service) {
		s.modelName = modelName
		s.frontField = frontField
		s.backField = backField
	}
}

func WithTags(tags ...string) Option {
	return func(s *Service) {
		s.tags = tags
	}
}

type AnkiConnectRequest struct {
	Action  string      `json:"action"`
	Version int         `json:"version"`
	Params  interface{} `json:"params,omitempty"`
}

type Note struct {
	DeckName  string                 `json:"deckName"`
	ModelName string                 `json:"modelName"`
	Fields    map[string]string      `json:"fields"`
	Options   map[string]interface{} `json:"options"`
	Tags      []string               `json:"tags"`
}

func NewService(logger *logger.Logger, options ...Option) *Service {
	s := &Service{
		ankiConnectURL: DefaultAnkiConnectURL,
		client:         &http.Client{Timeout: DefaultTimeout},
		modelName:      config.DefaultModelName,
		frontField:     config.DefaultFrontField,
		backField:      config.DefaultBackField,
		logger:         logger,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

func NewServiceFromConfig(cfg config.AnkiConfig, logger *logger.Logger) *Service {
	return NewService(logger,
		WithURL(cfg.URL),
		WithTimeout(cfg.Timeout),
		WithNoteType(cfg.ModelName, cfg.FrontField, cfg.BackField),
		WithTags(cfg.Tags...),
	)
}

func (s *Service) CheckConnection(ctx context.Context) error {
	request := AnkiConnectRequest{
		Action:  "version",
		Version: ANKI_CONNECT_VERSION,
	}

	_, err := s.sendRequest(ctx, request)
	if err != nil {
		s.logger.Info("Error sending request to Anki at %s: %v", s.ankiConnectURL, err)
		return fmt.Errorf("%w at %s. Please ensure:\n"+
			"1. Anki is running https://apps.ankiweb.net/#download\n"+
			"2. AnkiConnect add-on is installed (code: 2055492159) https://ankiweb.net/shared/info/2055492159\n"+
			"3. Anki has been restarted after installing AnkiConnect", ErrAnkiUnavailable, s.ankiConnectURL)
	}

	return nil
}

func (s *Service) DeckNames(ctx context.Context) ([]string, error) {
	request := AnkiConnectRequest{
		Action:  "deckNames",
		Version: ANKI_CONNECT_VERSION,
	}

	result, err := s.sendRequest(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get decks: %w", err)
	}

	var deckNames []string
	if err := json.Unmarshal(result, &deckNames); err != nil {
		return nil, fmt.Errorf("failed to parse deck names: %w", err)
	}

	return deckNames, nil
}

func (s *Service) CreateDeck(ctx context.Context, deckName string) error {
	s.logger.Info("Creating deck: %s", deckName)
	request := AnkiConnectRequest{
		Action:  "createDeck",
		Version: ANKI_CONNECT_VERSION,
		Params: map[string]string{
			"deck": deckName,
		},
	}

	if _, err := s.sendRequest(ctx, request); err != nil {
		return fmt.Errorf("failed to create deck %s: %w", deckName, err)
	}
	return nil
}

// EnsureDeck creates deckName unless Anki already lists it. It reports
// whether a deck was created.
func (s *Service) EnsureDeck(ctx context.Context, deckName string) (bool, error) {
	deckNames, err := s.DeckNames(ctx)
	if err != nil {
		return false, err
	}

	if slices.Contains(deckNames, deckName) {
		s.logger.Debug("Deck already exists: %s", deckName)
		return false, nil
	}

	if err := s.CreateDeck(ctx, deckName); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) AddNote(ctx context.Context, deckName string, card models.Flashcard) (int64, error) {
	note := Note{
		DeckName:  deckName,
		ModelName: s.modelName,
		Fields: map[string]string{
			s.frontField: card.Front(),
			s.backField:  card.Back(),
		},
		Options: map[string]interface{}{
			"allowDuplicate": false,
		},
		Tags: s.tags,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	request := AnkiConnectRequest{
		Action:  "addNote",
		Version: ANKI_CONNECT_VERSION,
		Params: map[string]interface{}{
			"note": note,
		},
	}

	result, err := s.sendRequest(ctx, request)
	if err != nil {
		return 0, fmt.Errorf("failed to add note: %w", err)
	}

	var noteID int64
	if err := json.Unmarshal(result, &noteID); err != nil {
		return 0, fmt.Errorf("failed to parse note id: %w", err)
	}

	s.logger.Trace("Added note %d: %q / %q", noteID, card.Front(), card.Back())
	return noteID, nil
}

// ProgressFunc is called once per flashcard after Anki answered, with the
// error of that flashcard if any.
type ProgressFunc func(card models.Flashcard, err error)

// AddAllFlashcards adds the cards one by one, in order. A failed card is
// recorded in the report and does not stop the others; only a cancelled
// context does.
func (s *Service) AddAllFlashcards(ctx context.Context, deckName string, cards []models.Flashcard, report *ProcessingReport, progress ProgressFunc) error {
	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := s.AddNote(ctx, deckName, card)
		switch {
		case err == nil:
			report.AddedCount++
			s.logger.Info("Added flashcard: %s", card.Vocabulary)
		case IsDuplicate(err):
			report.SkippedCount++
			report.SkippedCards = append(report.SkippedCards, CardIssue{
				DeckName:   deckName,
				Vocabulary: card.Vocabulary,
				Reason:     err.Error(),
			})
			s.logger.Info("Skipping duplicate flashcard: %s", card.Vocabulary)
		default:
			report.FailedCount++
			report.FailedCards = append(report.FailedCards, CardIssue{
				DeckName:   deckName,
				Vocabulary: card.Vocabulary,
				Reason:     err.Error(),
			})
			s.logger.Info("Failed to add flashcard: %s. Error: %v", card.Vocabulary, err)
		}

		if progress != nil {
			progress(card, err)
		}
	}

	s.logger.Debug("Added %d of %d flashcards to %s", report.AddedCount, len(cards), deckName)
	return nil
}

func (s *Service) sendRequest(ctx context.Context, req AnkiConnectRequest) (json.RawMessage, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	s.logger.Trace("AnkiConnect request: %s", reqBody)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ankiConnectURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AnkiConnect returned status %d", resp.StatusCode)
	}

	var result struct {
		Error  *string         `json:"error"`
		Result json.RawMessage `json:"result"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Error != nil {
		return nil, &APIError{Action: req.Action, Message: *result.Error}
	}

	return result.Result, nil
}
