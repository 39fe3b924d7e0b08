package scoring

import (
	"github.com/mcoot/scrabblesolver/internal/model"
)

// Service scores single candidate placements against a board
type Service struct {
	config *model.ScoringConfig
}

// New creates a new ScoringService for the given score tables
func New(config *model.ScoringConfig) *Service {
	return &Service{
		config: config,
	}
}

// Score validates a placement of word with its first letter at pos and returns
// its score and wildcard usage. It returns model.ErrInvalidPlacement if the
// word does not fit the board, conflicts with a letter already placed, or
// cannot be filled from the rack. Neither the board nor the rack is modified.
func (s *Service) Score(word string, pos model.Position, o model.Orientation, layout *model.Layout, state *model.BoardState, rack model.Rack) (model.Placement, error) {
	letters := []rune(word)
	if len(letters) == 0 {
		return model.Placement{}, model.ErrInvalidPlacement
	}
	// Both ends of the span must be on the board before any tile is drawn
	if !layout.InBounds(pos) || !layout.InBounds(pos.Advance(o, len(letters)-1)) {
		return model.Placement{}, model.ErrInvalidPlacement
	}

	tiles := rack.Counts()
	points := 0
	wordMul := 1
	used := 0
	usedWildcard := false
	wildcards := make([]bool, len(letters))

	for k, letter := range letters {
		cell := pos.Advance(o, k)
		kind := layout.Kind(cell)

		if state.IsEmpty(cell) {
			switch {
			case tiles[letter] > 0:
				tiles[letter]--
				points += s.config.LetterPoints(letter) * kind.LetterMultiplier()
			case tiles[model.Wildcard] > 0:
				tiles[model.Wildcard]--
				wildcards[k] = true
				usedWildcard = true
			default:
				return model.Placement{}, model.ErrInvalidPlacement
			}
			used++
		} else {
			if state.Get(cell) != letter {
				return model.Placement{}, model.ErrInvalidPlacement
			}
			if state.IsWildcard(cell) {
				wildcards[k] = true
			} else {
				points += s.config.LetterPoints(letter) * kind.LetterMultiplier()
			}
		}
		// Premiums under tiles already on the board count again
		wordMul *= kind.WordMultiplier()
	}

	bonus := s.config.CountBonus(used, usedWildcard)
	bonus += s.config.WordBonus[word]

	return model.Placement{
		Word:        word,
		Position:    pos,
		Orientation: o,
		Wildcards:   wildcards,
		TilesUsed:   used,
		Score:       wordMul*points + bonus,
	}, nil
}

// ServiceInterface is implemented by Service
type ServiceInterface interface {
	Score(word string, pos model.Position, o model.Orientation, layout *model.Layout, state *model.BoardState, rack model.Rack) (model.Placement, error)
}

var _ ServiceInterface = (*Service)(nil)
