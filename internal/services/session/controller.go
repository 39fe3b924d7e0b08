package session

import (
	"context"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/mcoot/scrabblesolver/internal/dependencies/clock"
	"github.com/mcoot/scrabblesolver/internal/dependencies/random"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/solver"
	"github.com/mcoot/scrabblesolver/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages assistant sessions: board editing, rack input,
// searching and accepting placements
type Controller struct {
	storage storage.Storage
	locales *locale.Registry
	solver  solver.ServiceInterface
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new SessionController
func NewController(
	storage storage.Storage,
	locales *locale.Registry,
	solver solver.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		locales: locales,
		solver:  solver,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create starts a session with an empty board for the locale
func (c *Controller) Create(ctx context.Context, localeCode string) (*model.Session, error) {
	loc, err := c.locales.Get(localeCode)
	if err != nil {
		return nil, err
	}

	id := model.SessionID(c.random.String(12, idAlphabet))
	sess := model.NewSession(id, loc.Code, loc.Layout, c.clock.Now())

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("locale", loc.Code),
	)
	return sess, nil
}

// Get retrieves a session by ID
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// Delete removes a session
func (c *Controller) Delete(ctx context.Context, id model.SessionID) error {
	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}
	return c.storage.DeleteSession(ctx, id)
}

// Locale returns the locale a session plays in
func (c *Controller) Locale(sess *model.Session) (*locale.Locale, error) {
	return c.locales.Get(sess.Locale)
}

// update loads a session, applies fn and saves it when fn succeeds
func (c *Controller) update(ctx context.Context, id model.SessionID, fn func(sess *model.Session, loc *locale.Locale) error) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	loc, err := c.locales.Get(sess.Locale)
	if err != nil {
		return nil, err
	}
	if err := fn(sess, loc); err != nil {
		return nil, err
	}
	sess.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetRack replaces the tiles in hand. Characters outside the locale alphabet
// are dropped and the rack is truncated to the locale's rack size.
func (c *Controller) SetRack(ctx context.Context, id model.SessionID, input string) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, loc *locale.Locale) error {
		sess.Rack = model.NormalizeRack(input, loc.Alphabet, loc.RackSize)
		sess.Results = nil
		return nil
	})
}

// MoveCursor sets the typing position and direction
func (c *Controller) MoveCursor(ctx context.Context, id model.SessionID, pos model.Position, o model.Orientation) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, loc *locale.Locale) error {
		if !loc.Layout.InBounds(pos) {
			return model.ErrInvalidPosition
		}
		sess.Cursor = pos
		sess.Orientation = o
		return nil
	})
}

// typedTile is one tile parsed from typed text
type typedTile struct {
	letter   rune
	wildcard bool
}

// parseTyped reads letters, where "*X" is the letter X placed with a wildcard
func parseTyped(text string, loc *locale.Locale) ([]typedTile, error) {
	var tiles []typedTile
	input := []rune(text)
	for i := 0; i < len(input); i++ {
		wildcard := false
		if input[i] == model.Wildcard {
			wildcard = true
			i++
			if i >= len(input) {
				return nil, fmt.Errorf("%w: wildcard without letter", model.ErrInvalidLetter)
			}
		}
		letter := unicode.ToUpper(input[i])
		if !loc.HasLetter(letter) {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidLetter, input[i])
		}
		tiles = append(tiles, typedTile{letter: letter, wildcard: wildcard})
	}
	return tiles, nil
}

// Type writes letters onto the board from the cursor, advancing it along the
// session orientation and stopping at the board edge
func (c *Controller) Type(ctx context.Context, id model.SessionID, text string) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, loc *locale.Locale) error {
		tiles, err := parseTyped(text, loc)
		if err != nil {
			return err
		}
		for _, t := range tiles {
			sess.State.Set(sess.Cursor, t.letter, t.wildcard)
			if next := sess.Cursor.Advance(sess.Orientation, 1); loc.Layout.InBounds(next) {
				sess.Cursor = next
			}
		}
		sess.Results = nil
		return nil
	})
}

// ClearCell removes the letter at the position
func (c *Controller) ClearCell(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, loc *locale.Locale) error {
		if !loc.Layout.InBounds(pos) {
			return model.ErrInvalidPosition
		}
		sess.State.Clear(pos)
		sess.Results = nil
		return nil
	})
}

// ToggleWildcardDisplay switches between showing wildcard tiles as '*' or as their letter
func (c *Controller) ToggleWildcardDisplay(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, _ *locale.Locale) error {
		sess.ShowWildcards = !sess.ShowWildcards
		return nil
	})
}

// Solve searches every placement for the session rack and keeps the ranked
// results (truncated to limit when limit > 0) on the session
func (c *Controller) Solve(ctx context.Context, id model.SessionID, limit int) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, loc *locale.Locale) error {
		if sess.Rack.IsEmpty() {
			return model.ErrEmptyRack
		}
		ranked, err := c.solver.Solve(ctx, loc, sess.State, sess.Rack, limit)
		if err != nil {
			return err
		}
		sess.Results = ranked

		c.logger.Info("session solved",
			slog.String("session_id", string(sess.ID)),
			slog.String("rack", sess.Rack.String()),
			slog.Int("results", len(ranked)),
		)
		return nil
	})
}

// Accept writes the result at index onto the board and empties the rack
func (c *Controller) Accept(ctx context.Context, id model.SessionID, index int) (*model.Session, error) {
	return c.update(ctx, id, func(sess *model.Session, _ *locale.Locale) error {
		if len(sess.Results) == 0 {
			return model.ErrNoResults
		}
		if index < 0 || index >= len(sess.Results) {
			return model.ErrResultIndex
		}
		chosen := sess.Results[index]
		sess.State.Apply(chosen)
		sess.Rack = model.Rack{}
		sess.Results = nil

		c.logger.Info("placement accepted",
			slog.String("session_id", string(sess.ID)),
			slog.String("word", chosen.Word),
			slog.Int("score", chosen.Score),
		)
		return nil
	})
}

// ControllerInterface is implemented by Controller
type ControllerInterface interface {
	Create(ctx context.Context, localeCode string) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	Delete(ctx context.Context, id model.SessionID) error
	SetRack(ctx context.Context, id model.SessionID, input string) (*model.Session, error)
	MoveCursor(ctx context.Context, id model.SessionID, pos model.Position, o model.Orientation) (*model.Session, error)
	Type(ctx context.Context, id model.SessionID, text string) (*model.Session, error)
	ClearCell(ctx context.Context, id model.SessionID, pos model.Position) (*model.Session, error)
	ToggleWildcardDisplay(ctx context.Context, id model.SessionID) (*model.Session, error)
	Solve(ctx context.Context, id model.SessionID, limit int) (*model.Session, error)
	Accept(ctx context.Context, id model.SessionID, index int) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
