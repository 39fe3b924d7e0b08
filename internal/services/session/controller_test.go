package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblesolver/internal/dependencies/mocks"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
	"github.com/mcoot/scrabblesolver/internal/services/solver"
	"github.com/mcoot/scrabblesolver/internal/storage/memory"
	"github.com/mcoot/scrabblesolver/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()

	locales := locale.MustBuiltin()
	en, err := locales.Get("en")
	s.Require().NoError(err)

	dicts := dictionary.NewService(s.storage, testutil.NopLogger())
	dicts.LoadWords(en, testutil.EnglishWords)
	solve := solver.New(dicts, nil, testutil.NopLogger())

	s.controller = NewController(s.storage, locales, solve, s.clock, s.random, testutil.NopLogger())
}

func (s *ControllerSuite) create() *model.Session {
	s.random.QueueString("SESSION1")
	sess, err := s.controller.Create(s.ctx, "en")
	s.Require().NoError(err)
	return sess
}

func (s *ControllerSuite) TestCreate() {
	sess := s.create()

	s.Equal(model.SessionID("SESSION1"), sess.ID)
	s.Equal("en", sess.Locale)
	s.Equal(15, sess.State.Width())
	s.Equal(0, sess.State.Count())
	s.True(sess.Rack.IsEmpty())
	s.True(sess.ShowWildcards)
	s.Equal(s.clock.Now(), sess.CreatedAt)

	stored, err := s.controller.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.ID, stored.ID)
}

func (s *ControllerSuite) TestCreateUnknownLocale() {
	_, err := s.controller.Create(s.ctx, "xx")
	s.ErrorIs(err, model.ErrLocaleNotFound)
}

func (s *ControllerSuite) TestGetUnknown() {
	_, err := s.controller.Get(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestDelete() {
	sess := s.create()
	s.Require().NoError(s.controller.Delete(s.ctx, sess.ID))

	_, err := s.controller.Get(s.ctx, sess.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
	s.ErrorIs(s.controller.Delete(s.ctx, sess.ID), model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestSetRackNormalises() {
	sess := s.create()

	updated, err := s.controller.SetRack(s.ctx, sess.ID, "c a t ? * xyzqw")
	s.Require().NoError(err)
	s.Equal("CAT*XYZ", updated.Rack.String(), "unknown symbols dropped, truncated to 7 tiles")
}

func (s *ControllerSuite) TestMoveCursor() {
	sess := s.create()

	updated, err := s.controller.MoveCursor(s.ctx, sess.ID, model.Position{Row: 3, Col: 4}, model.Vertical)
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 3, Col: 4}, updated.Cursor)
	s.Equal(model.Vertical, updated.Orientation)

	_, err = s.controller.MoveCursor(s.ctx, sess.ID, model.Position{Row: 15, Col: 0}, model.Horizontal)
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ControllerSuite) TestTypeAdvancesCursor() {
	sess := s.create()
	_, err := s.controller.MoveCursor(s.ctx, sess.ID, model.Position{Row: 7, Col: 6}, model.Horizontal)
	s.Require().NoError(err)

	updated, err := s.controller.Type(s.ctx, sess.ID, "c*at")
	s.Require().NoError(err)

	s.Equal("......CaT......", updated.State.Rows()[7])
	s.True(updated.State.IsWildcard(model.Position{Row: 7, Col: 7}))
	s.Equal(model.Position{Row: 7, Col: 9}, updated.Cursor)
}

func (s *ControllerSuite) TestTypeStopsAtEdge() {
	sess := s.create()
	_, err := s.controller.MoveCursor(s.ctx, sess.ID, model.Position{Row: 13, Col: 3}, model.Vertical)
	s.Require().NoError(err)

	updated, err := s.controller.Type(s.ctx, sess.ID, "ABC")
	s.Require().NoError(err)

	// B lands on the last row and C overwrites it
	s.Equal('A', updated.State.Get(model.Position{Row: 13, Col: 3}))
	s.Equal('C', updated.State.Get(model.Position{Row: 14, Col: 3}))
	s.Equal(model.Position{Row: 14, Col: 3}, updated.Cursor)
}

func (s *ControllerSuite) TestTypeInvalidLetterChangesNothing() {
	sess := s.create()

	_, err := s.controller.Type(s.ctx, sess.ID, "AB1")
	s.ErrorIs(err, model.ErrInvalidLetter)

	_, err = s.controller.Type(s.ctx, sess.ID, "A*")
	s.ErrorIs(err, model.ErrInvalidLetter)

	stored, err := s.controller.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.State.Count())
	s.Equal(model.Position{}, stored.Cursor)
}

func (s *ControllerSuite) TestClearCell() {
	sess := s.create()
	_, err := s.controller.Type(s.ctx, sess.ID, "AB")
	s.Require().NoError(err)

	updated, err := s.controller.ClearCell(s.ctx, sess.ID, model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.True(updated.State.IsEmpty(model.Position{Row: 0, Col: 0}))
	s.Equal('B', updated.State.Get(model.Position{Row: 0, Col: 1}))

	_, err = s.controller.ClearCell(s.ctx, sess.ID, model.Position{Row: -1, Col: 0})
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ControllerSuite) TestToggleWildcardDisplay() {
	sess := s.create()

	updated, err := s.controller.ToggleWildcardDisplay(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.False(updated.ShowWildcards)

	updated, err = s.controller.ToggleWildcardDisplay(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.True(updated.ShowWildcards)
}

func (s *ControllerSuite) TestSolveAndAccept() {
	sess := s.create()
	_, err := s.controller.SetRack(s.ctx, sess.ID, "CATS")
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	solved, err := s.controller.Solve(s.ctx, sess.ID, 5)
	s.Require().NoError(err)
	s.Require().NotEmpty(solved.Results)
	s.LessOrEqual(len(solved.Results), 5)
	s.Equal(s.clock.Now(), solved.UpdatedAt)

	best := solved.Results[0]
	accepted, err := s.controller.Accept(s.ctx, sess.ID, 0)
	s.Require().NoError(err)

	s.Equal(len([]rune(best.Word)), accepted.State.Count())
	for k, cell := range best.Cells() {
		s.Equal([]rune(best.Word)[k], accepted.State.Get(cell))
	}
	s.True(accepted.Rack.IsEmpty())
	s.Empty(accepted.Results)
}

func (s *ControllerSuite) TestSolveEmptyRack() {
	sess := s.create()
	_, err := s.controller.Solve(s.ctx, sess.ID, 0)
	s.ErrorIs(err, model.ErrEmptyRack)
}

func (s *ControllerSuite) TestAcceptErrors() {
	sess := s.create()

	_, err := s.controller.Accept(s.ctx, sess.ID, 0)
	s.ErrorIs(err, model.ErrNoResults)

	_, err = s.controller.SetRack(s.ctx, sess.ID, "CAT")
	s.Require().NoError(err)
	solved, err := s.controller.Solve(s.ctx, sess.ID, 0)
	s.Require().NoError(err)

	_, err = s.controller.Accept(s.ctx, sess.ID, len(solved.Results))
	s.ErrorIs(err, model.ErrResultIndex)
	_, err = s.controller.Accept(s.ctx, sess.ID, -1)
	s.ErrorIs(err, model.ErrResultIndex)
}

func (s *ControllerSuite) TestEditsClearResults() {
	sess := s.create()
	_, err := s.controller.SetRack(s.ctx, sess.ID, "CAT")
	s.Require().NoError(err)
	_, err = s.controller.Solve(s.ctx, sess.ID, 0)
	s.Require().NoError(err)

	updated, err := s.controller.Type(s.ctx, sess.ID, "S")
	s.Require().NoError(err)
	s.Empty(updated.Results)
}
