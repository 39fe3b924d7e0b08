package response

import (
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
)

// Placement represents a scored word placement
type Placement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Vertical  bool   `json:"vertical"`
	Score     int    `json:"score"`
	TilesUsed int    `json:"tiles_used"`
	Wildcards []bool `json:"wildcards"`
}

// PlacementFromModel converts a model.Placement
func PlacementFromModel(p model.Placement) Placement {
	return Placement{
		Word:      p.Word,
		Row:       p.Position.Row,
		Col:       p.Position.Col,
		Vertical:  p.Orientation == model.Vertical,
		Score:     p.Score,
		TilesUsed: p.TilesUsed,
		Wildcards: p.Wildcards,
	}
}

// PlacementsFromModel converts a ranked list of placements
func PlacementsFromModel(ps []model.Placement) []Placement {
	return lo.Map(ps, func(p model.Placement, _ int) Placement { return PlacementFromModel(p) })
}

// SolveResponse is the response for a search
type SolveResponse struct {
	Rack       string      `json:"rack"`
	Placements []Placement `json:"placements"`
}

// Position represents a board cell
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Session represents an assistant session
type Session struct {
	ID            string      `json:"id"`
	Locale        string      `json:"locale"`
	Board         []string    `json:"board"`   // lowercase letters are wildcard tiles
	Display       []string    `json:"display"` // board as shown, honouring show_wildcards
	Rack          string      `json:"rack"`
	Cursor        Position    `json:"cursor"`
	Vertical      bool        `json:"vertical"`
	ShowWildcards bool        `json:"show_wildcards"`
	Results       []Placement `json:"results"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:            string(s.ID),
		Locale:        s.Locale,
		Board:         s.State.Rows(),
		Display:       DisplayRows(s.State, s.ShowWildcards),
		Rack:          s.Rack.String(),
		Cursor:        Position{Row: s.Cursor.Row, Col: s.Cursor.Col},
		Vertical:      s.Orientation == model.Vertical,
		ShowWildcards: s.ShowWildcards,
		Results:       PlacementsFromModel(s.Results),
		UpdatedAt:     s.UpdatedAt,
	}
}

// DisplayRows renders the board with wildcard tiles either as '*' or as their letter
func DisplayRows(state *model.BoardState, showWildcards bool) []string {
	rows := state.Rows()
	for i, row := range rows {
		rows[i] = strings.Map(func(r rune) rune {
			if !unicode.IsLower(r) {
				return r
			}
			if showWildcards {
				return model.Wildcard
			}
			return unicode.ToUpper(r)
		}, row)
	}
	return rows
}

// LocaleSummary lists a locale
type LocaleSummary struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	RackSize int    `json:"rack_size"`
}

// LocaleSummaryFromModel converts a locale.Locale
func LocaleSummaryFromModel(l *locale.Locale) LocaleSummary {
	return LocaleSummary{
		Code:     l.Code,
		Name:     l.Name,
		Width:    l.Layout.Width(),
		Height:   l.Layout.Height(),
		RackSize: l.RackSize,
	}
}

// Locale describes a locale in full
type Locale struct {
	LocaleSummary
	Alphabet      string         `json:"alphabet"`
	Layout        []string       `json:"layout"`
	Points        map[string]int `json:"points"`
	Counts        map[string]int `json:"counts"`
	PlainBonus    map[int]int    `json:"plain_bonus"`
	WildcardBonus map[int]int    `json:"wildcard_bonus"`
	WordBonus     map[string]int `json:"word_bonus"`
}

// LocaleFromModel converts a locale.Locale
func LocaleFromModel(l *locale.Locale) Locale {
	return Locale{
		LocaleSummary: LocaleSummaryFromModel(l),
		Alphabet:      string(l.Alphabet),
		Layout:        strings.Split(strings.TrimSuffix(l.Layout.String(), "\n"), "\n"),
		Points:        lo.MapKeys(l.Scoring.Points, func(_ int, r rune) string { return string(r) }),
		Counts:        lo.MapKeys(l.Counts, func(_ int, r rune) string { return string(r) }),
		PlainBonus:    l.Scoring.PlainBonus,
		WildcardBonus: l.Scoring.WildcardBonus,
		WordBonus:     l.Scoring.WordBonus,
	}
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status  string         `json:"status"`
	Locales map[string]int `json:"locales"` // Locale code -> dictionary words loaded
}
