package finder

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/scoring"
)

// Service enumerates every placement of dictionary words on a board
type Service struct {
	scorer scoring.ServiceInterface
	logger *slog.Logger
}

// New creates a new FinderService driving the given scorer
func New(scorer scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		scorer: scorer,
		logger: logger,
	}
}

// candidate is a dictionary word with its letter count precomputed
type candidate struct {
	word   string
	length int
}

// FindAll returns the best placement of every word that can be played.
// Cells are scanned row by row, horizontal before vertical at each cell, and
// words in the order given; on equal scores the first placement found is kept.
func (s *Service) FindAll(layout *model.Layout, state *model.BoardState, rack model.Rack, words []string) map[string]model.Placement {
	results := make(map[string]model.Placement)
	if rack.IsEmpty() {
		return results
	}

	started := time.Now()
	candidates := make([]candidate, len(words))
	for i, w := range words {
		candidates[i] = candidate{word: w, length: utf8.RuneCountInString(w)}
	}

	scored := 0
	for row := 0; row < layout.Height(); row++ {
		for col := 0; col < layout.Width(); col++ {
			pos := model.Position{Row: row, Col: col}
			scored += s.scanLine(results, layout, state, rack, candidates, pos, model.Horizontal)
			scored += s.scanLine(results, layout, state, rack, candidates, pos, model.Vertical)
		}
	}

	s.logger.Debug("placements searched",
		slog.Int("rack_size", rack.Len()),
		slog.Int("dictionary_size", len(words)),
		slog.Int("candidates_scored", scored),
		slog.Int("words_found", len(results)),
		slog.Duration("duration", time.Since(started)),
	)
	return results
}

// scanLine tries every fitting word starting at pos along o and records the
// improvements in results. It returns the number of candidates scored.
func (s *Service) scanLine(results map[string]model.Placement, layout *model.Layout, state *model.BoardState, rack model.Rack, candidates []candidate, pos model.Position, o model.Orientation) int {
	lineLen := layout.Len(o)
	offset := pos.Col
	if o == model.Vertical {
		offset = pos.Row
	}
	remaining := lineLen - offset

	// Room for at least two letters
	if remaining < 2 {
		return 0
	}
	// A word cannot start in the middle of letters already on the board
	if offset > 0 && !state.IsEmpty(pos.Advance(o, -1)) {
		return 0
	}

	anchor := -1
	for k := 0; k < remaining; k++ {
		cell := pos.Advance(o, k)
		if !state.IsEmpty(cell) || layout.Kind(cell) == model.CellStart {
			anchor = k
			break
		}
	}
	if anchor < 0 {
		return 0
	}

	minLen := max(2, anchor+1)
	maxLen := remaining

	scored := 0
	for _, c := range candidates {
		if c.length < minLen || c.length > maxLen {
			continue
		}
		// The cell past the last letter must not extend the word
		if c.length < remaining && !state.IsEmpty(pos.Advance(o, c.length)) {
			continue
		}
		scored++
		p, err := s.scorer.Score(c.word, pos, o, layout, state, rack)
		if err != nil || p.Score <= 0 {
			continue
		}
		if best, ok := results[c.word]; !ok || best.Score < p.Score {
			results[c.word] = p
		}
	}
	return scored
}

// Rank orders placements by score, highest first, then by word
func Rank(results map[string]model.Placement) []model.Placement {
	ranked := lo.Values(results)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}

// Best returns the ranked placements, truncated to limit when limit > 0
func (s *Service) Best(layout *model.Layout, state *model.BoardState, rack model.Rack, words []string, limit int) []model.Placement {
	ranked := Rank(s.FindAll(layout, state, rack, words))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// FindMany runs an independent ranked search for each rack against the same
// board. Results are returned in rack order.
func (s *Service) FindMany(ctx context.Context, layout *model.Layout, state *model.BoardState, racks []model.Rack, words []string, limit int) ([][]model.Placement, error) {
	out := make([][]model.Placement, len(racks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rack := range racks {
		i, rack := i, rack
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = s.Best(layout, state, rack, words, limit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ServiceInterface is implemented by Service
type ServiceInterface interface {
	FindAll(layout *model.Layout, state *model.BoardState, rack model.Rack, words []string) map[string]model.Placement
	Best(layout *model.Layout, state *model.BoardState, rack model.Rack, words []string, limit int) []model.Placement
	FindMany(ctx context.Context, layout *model.Layout, state *model.BoardState, racks []model.Rack, words []string, limit int) ([][]model.Placement, error)
}

var _ ServiceInterface = (*Service)(nil)
