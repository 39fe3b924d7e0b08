package solver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
	"github.com/mcoot/scrabblesolver/internal/services/finder"
	"github.com/mcoot/scrabblesolver/internal/services/scoring"
	"github.com/mcoot/scrabblesolver/internal/services/solvecache"
)

// Service runs searches for a locale: dictionary lookup, cache, finder
type Service struct {
	dictionary dictionary.ServiceInterface
	cache      solvecache.ServiceInterface
	logger     *slog.Logger
}

// New creates a new SolverService. cache may be nil to disable caching.
func New(dictionary dictionary.ServiceInterface, cache solvecache.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		cache:      cache,
		logger:     logger,
	}
}

func (s *Service) finder(loc *locale.Locale) *finder.Service {
	return finder.New(scoring.New(&loc.Scoring), s.logger)
}

// Solve returns the ranked placements for the rack, truncated to limit when limit > 0
func (s *Service) Solve(ctx context.Context, loc *locale.Locale, state *model.BoardState, rack model.Rack, limit int) ([]model.Placement, error) {
	if err := checkState(loc, state); err != nil {
		return nil, err
	}
	dict, err := s.dictionary.Get(loc.Code)
	if err != nil {
		return nil, err
	}

	var ranked []model.Placement
	key := solvecache.Fingerprint(loc.Code, dict.Digest(), state, rack)
	if s.cache != nil {
		ranked, err = s.cache.Get(ctx, key)
	}
	if s.cache == nil || err != nil {
		ranked = s.finder(loc).Best(loc.Layout, state, rack, dict.Words(), 0)
		if s.cache != nil {
			if err := s.cache.Put(ctx, key, ranked); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn("solution not cached", slog.String("error", err.Error()))
			}
		}
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// SolveMany runs one search per rack concurrently, bypassing the cache
func (s *Service) SolveMany(ctx context.Context, loc *locale.Locale, state *model.BoardState, racks []model.Rack, limit int) ([][]model.Placement, error) {
	if err := checkState(loc, state); err != nil {
		return nil, err
	}
	dict, err := s.dictionary.Get(loc.Code)
	if err != nil {
		return nil, err
	}
	return s.finder(loc).FindMany(ctx, loc.Layout, state, racks, dict.Words(), limit)
}

// Score validates and scores one placement with the locale tables
func (s *Service) Score(loc *locale.Locale, state *model.BoardState, rack model.Rack, word string, pos model.Position, o model.Orientation) (model.Placement, error) {
	if err := checkState(loc, state); err != nil {
		return model.Placement{}, err
	}
	return scoring.New(&loc.Scoring).Score(word, pos, o, loc.Layout, state, rack)
}

// checkState rejects board states whose dimensions differ from the layout
func checkState(loc *locale.Locale, state *model.BoardState) error {
	if state.Width() != loc.Layout.Width() || state.Height() != loc.Layout.Height() {
		return model.ErrInvalidBoard
	}
	return nil
}

// ServiceInterface is implemented by Service
type ServiceInterface interface {
	Solve(ctx context.Context, loc *locale.Locale, state *model.BoardState, rack model.Rack, limit int) ([]model.Placement, error)
	SolveMany(ctx context.Context, loc *locale.Locale, state *model.BoardState, racks []model.Rack, limit int) ([][]model.Placement, error)
	Score(loc *locale.Locale, state *model.BoardState, rack model.Rack, word string, pos model.Position, o model.Orientation) (model.Placement, error)
}

var _ ServiceInterface = (*Service)(nil)
