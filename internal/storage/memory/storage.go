package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions        map[model.SessionID][]byte
	dictionaryWords map[string][]string
	solutions       map[string][]model.Placement
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:        make(map[model.SessionID][]byte),
		dictionaryWords: make(map[string][]string),
		solutions:       make(map[string][]model.Placement),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

// Sessions are stored encoded so callers never share board grids with the store.
func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = data
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, locale string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaryWords[locale]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(words))
	copy(result, words)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, locale string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(words))
	copy(stored, words)
	s.dictionaryWords[locale] = stored
	return nil
}

// Solution cache operations

func (s *Storage) GetSolution(ctx context.Context, key string) ([]model.Placement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	placements, ok := s.solutions[key]
	if !ok {
		return nil, model.ErrSolutionNotFound
	}
	result := make([]model.Placement, len(placements))
	copy(result, placements)
	return result, nil
}

func (s *Storage) SaveSolution(ctx context.Context, key string, placements []model.Placement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.Placement, len(placements))
	copy(stored, placements)
	s.solutions[key] = stored
	return nil
}
