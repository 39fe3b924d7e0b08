package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/storage"
)

// Service loads and holds one dictionary per locale
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	dicts map[string]*Dictionary
}

// NewService creates a new DictionaryService
func NewService(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		dicts:   make(map[string]*Dictionary),
	}
}

// LoadFromStorage loads previously saved words for the locale
func (s *Service) LoadFromStorage(ctx context.Context, loc *locale.Locale) error {
	words, err := s.storage.GetDictionaryWords(ctx, loc.Code)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return model.ErrDictionaryNotLoaded
	}
	s.set(loc.Code, New(words))
	return nil
}

// LoadFromReader loads a word list (one word per line) for the locale
func (s *Service) LoadFromReader(ctx context.Context, loc *locale.Locale, r io.Reader) error {
	var raw []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	dict := Build(raw, loc)

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, loc.Code, dict.Words()); err != nil {
		return err
	}

	s.set(loc.Code, dict)
	s.logger.Info("dictionary loaded",
		slog.String("locale", loc.Code),
		slog.Int("raw_entries", len(raw)),
		slog.Int("words", dict.Len()),
	)
	return nil
}

// LoadFromFile loads the first existing file among paths, falling back to the
// locale's configured paths when none are given
func (s *Service) LoadFromFile(ctx context.Context, loc *locale.Locale, paths ...string) error {
	if len(paths) == 0 {
		paths = loc.Dictionary.SearchPaths()
	}
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		err = s.LoadFromReader(ctx, loc, file)
		_ = file.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: no word list found for locale %s", model.ErrDictionaryNotLoaded, loc.Code)
}

// LoadWords directly loads a slice of raw words (useful for testing)
func (s *Service) LoadWords(loc *locale.Locale, words []string) *Dictionary {
	dict := Build(words, loc)
	s.set(loc.Code, dict)
	return dict
}

func (s *Service) set(code string, dict *Dictionary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dicts[code] = dict
}

// Get returns the dictionary loaded for the locale
func (s *Service) Get(code string) (*Dictionary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dict, ok := s.dicts[code]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	return dict, nil
}

// IsLoaded returns whether a dictionary has been loaded for the locale
func (s *Service) IsLoaded(code string) bool {
	_, err := s.Get(code)
	return err == nil
}

// WordCount returns the number of words loaded for the locale
func (s *Service) WordCount(code string) int {
	dict, err := s.Get(code)
	if err != nil {
		return 0
	}
	return dict.Len()
}

// ServiceInterface is implemented by Service
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context, loc *locale.Locale) error
	LoadFromReader(ctx context.Context, loc *locale.Locale, r io.Reader) error
	LoadFromFile(ctx context.Context, loc *locale.Locale, paths ...string) error
	LoadWords(loc *locale.Locale, words []string) *Dictionary
	Get(code string) (*Dictionary, error)
	IsLoaded(code string) bool
	WordCount(code string) int
}

var _ ServiceInterface = (*Service)(nil)
