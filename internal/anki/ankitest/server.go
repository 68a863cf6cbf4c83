// Package ankitest provides an in-process AnkiConnect stand-in for tests.
package ankitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
)

// Request is one decoded call received by the server.
type Request struct {
	Action  string          `json:"action"`
	Version int             `json:"version"`
	Params  json.RawMessage `json:"params"`
}

// AddedNote is the note part of an addNote call.
type AddedNote struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Options   struct {
		AllowDuplicate bool `json:"allowDuplicate"`
	} `json:"options"`
	Tags []string `json:"tags"`
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	decks    []string
	requests []Request
	notes    []AddedNote
	fronts   map[string]bool
	failing  map[string]string
	nextID   int64
}

// NewServer starts a server that already knows the given decks.
func NewServer(decks ...string) *Server {
	s := &Server{
		decks:   append([]string{"Default"}, decks...),
		fronts:  make(map[string]bool),
		failing: make(map[string]string),
		nextID:  1700000000000,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// FailAction makes every call to action answer with message as its error.
func (s *Server) FailAction(action, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[action] = message
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Count returns how many calls of action were received.
func (s *Server) Count(action string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Action == action {
			n++
		}
	}
	return n
}

// Actions lists the received actions in order.
func (s *Server) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]string, len(s.requests))
	for i, r := range s.requests {
		actions[i] = r.Action
	}
	return actions
}

func (s *Server) Notes() []AddedNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notes)
}

func (s *Server) Decks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.decks)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)

	if message, ok := s.failing[req.Action]; ok {
		writeResponse(w, nil, &message)
		return
	}

	switch req.Action {
	case "version":
		writeResponse(w, 6, nil)
	case "deckNames":
		writeResponse(w, s.decks, nil)
	case "createDeck":
		var params struct {
			Deck string `json:"deck"`
		}
		_ = json.Unmarshal(req.Params, &params)
		if !slices.Contains(s.decks, params.Deck) {
			s.decks = append(s.decks, params.Deck)
		}
		writeResponse(w, s.nextID, nil)
	case "addNote":
		var params struct {
			Note AddedNote `json:"note"`
		}
		_ = json.Unmarshal(req.Params, &params)
		front := params.Note.Fields["Front"]
		if !params.Note.Options.AllowDuplicate && s.fronts[front] {
			message := "cannot create note because it is a duplicate"
			writeResponse(w, nil, &message)
			return
		}
		s.fronts[front] = true
		s.notes = append(s.notes, params.Note)
		s.nextID++
		writeResponse(w, s.nextID, nil)
	default:
		message := "unsupported action"
		writeResponse(w, nil, &message)
	}
}

func writeResponse(w http.ResponseWriter, result interface{}, errMessage *string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"result": result,
		"error":  errMessage,
	})
}
