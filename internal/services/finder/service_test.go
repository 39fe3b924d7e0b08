package finder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/scoring"
	"github.com/mcoot/scrabblesolver/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	layout  *model.Layout
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.layout = model.MustParseLayout("" +
		".....\n" +
		".....\n" +
		"..B..\n" +
		".....\n" +
		".....\n")
	config := &model.ScoringConfig{
		Points: map[rune]int{'A': 1, 'C': 3, 'E': 1, 'S': 1, 'T': 1, 'Q': 10},
	}
	s.service = New(scoring.New(config), testutil.NopLogger())
}

func (s *ServiceSuite) board(rows ...string) *model.BoardState {
	state, err := model.ParseBoardState(rows, s.layout.Width(), s.layout.Height())
	s.Require().NoError(err)
	return state
}

func (s *ServiceSuite) TestEmptyRack() {
	results := s.service.FindAll(s.layout, s.board(), model.Rack{}, []string{"AT", "CAT"})
	s.Empty(results)
}

func (s *ServiceSuite) TestRackWithoutUsableLetters() {
	results := s.service.FindAll(s.layout, s.board(), model.NewRack("Q"), []string{"AT", "CAT", "TEA"})
	s.Empty(results)
}

func (s *ServiceSuite) TestOpeningMustCoverStart() {
	results := s.service.FindAll(s.layout, s.board(), model.NewRack("CAT"), []string{"AT", "CAT", "ACT"})

	s.Len(results, 3)
	for word, p := range results {
		covers := false
		for _, cell := range p.Cells() {
			if s.layout.Kind(cell) == model.CellStart {
				covers = true
			}
		}
		s.True(covers, "%s at %+v does not cover the start cell", word, p.Position)
	}
}

func (s *ServiceSuite) TestTieKeepsFirstInScanOrder() {
	results := s.service.FindAll(s.layout, s.board(), model.NewRack("CAT"), []string{"CAT"})

	// Every CAT through the start cell scores the same. Scanning row by row,
	// the vertical run from (0,2) is reached first.
	s.Require().Len(results, 1)
	best := results["CAT"]
	s.Equal(model.Position{Row: 0, Col: 2}, best.Position)
	s.Equal(model.Vertical, best.Orientation)
	s.Equal((3+1+1)*2, best.Score)
}

func (s *ServiceSuite) TestHigherScoreReplacesEarlier() {
	// Premium at (4,2) makes the later vertical placement through start better
	layout := model.MustParseLayout("" +
		".....\n" +
		".....\n" +
		"..B..\n" +
		".....\n" +
		"..W..\n")
	config := &model.ScoringConfig{Points: map[rune]int{'A': 1, 'C': 3, 'T': 1}}
	svc := New(scoring.New(config), testutil.NopLogger())

	state := model.NewBoardStateFor(layout)
	results := svc.FindAll(layout, state, model.NewRack("CAT"), []string{"CAT"})

	best := results["CAT"]
	s.Equal(model.Position{Row: 2, Col: 2}, best.Position)
	s.Equal(model.Vertical, best.Orientation)
	s.Equal((3+1+1)*2*3, best.Score)
}

func (s *ServiceSuite) TestAbuttingRunIsRejected() {
	// CAT from (2,0) reuses A and T but would run into the S
	state := s.board(".....", ".....", ".ATS.")
	results := s.service.FindAll(s.layout, state, model.NewRack("C"), []string{"CAT"})
	s.Empty(results)

	state = s.board(".....", ".....", ".AT..")
	results = s.service.FindAll(s.layout, state, model.NewRack("C"), []string{"CAT"})
	s.Require().Contains(results, "CAT")
	s.Equal(model.Position{Row: 2, Col: 0}, results["CAT"].Position)
	s.Equal(1, results["CAT"].TilesUsed)
}

func (s *ServiceSuite) TestCannotStartInsideExistingRun() {
	state := s.board(".....", ".....", "CA...")
	results := s.service.FindAll(s.layout, state, model.NewRack("T"), []string{"AT", "CAT"})

	// AT cannot start on the A after C, only run down from it
	s.Require().Contains(results, "AT")
	s.Equal(model.Position{Row: 2, Col: 1}, results["AT"].Position)
	s.Equal(model.Vertical, results["AT"].Orientation)

	s.Require().Contains(results, "CAT")
	s.Equal(model.Position{Row: 2, Col: 0}, results["CAT"].Position)
}

func (s *ServiceSuite) TestZeroScoreIsNotAMove() {
	// Only wildcards: every letter scores 0
	results := s.service.FindAll(s.layout, s.board(), model.NewRack("**"), []string{"AT"})
	s.Empty(results)
}

func (s *ServiceSuite) TestBoardIsNotModified() {
	state := s.board(".....", ".....", ".AT..")
	before := state.Rows()
	rack := model.NewRack("CES*")

	_ = s.service.FindAll(s.layout, state, rack, []string{"CAT", "CATS", "EAT", "SEAT"})

	s.Equal(before, state.Rows())
	s.Equal("CES*", rack.String())
}

func (s *ServiceSuite) TestRank() {
	ranked := Rank(map[string]model.Placement{
		"TEA": {Word: "TEA", Score: 6},
		"CAT": {Word: "CAT", Score: 10},
		"ACE": {Word: "ACE", Score: 6},
		"AT":  {Word: "AT", Score: 4},
	})

	words := make([]string, len(ranked))
	for i, p := range ranked {
		words[i] = p.Word
	}
	s.Equal([]string{"CAT", "ACE", "TEA", "AT"}, words)
}

func (s *ServiceSuite) TestBestLimit() {
	ranked := s.service.Best(s.layout, s.board(), model.NewRack("CATE"), []string{"AT", "CAT", "ACT", "TEA", "EAT"}, 2)
	s.Require().Len(ranked, 2)
	s.GreaterOrEqual(ranked[0].Score, ranked[1].Score)
}

func (s *ServiceSuite) TestFindMany() {
	racks := []model.Rack{model.NewRack("CAT"), model.NewRack("Q"), {}}
	results, err := s.service.FindMany(context.Background(), s.layout, s.board(), racks, []string{"AT", "CAT"}, 0)
	s.Require().NoError(err)

	s.Require().Len(results, 3)
	s.Len(results[0], 2)
	s.Empty(results[1])
	s.Empty(results[2])

	single := s.service.Best(s.layout, s.board(), model.NewRack("CAT"), []string{"AT", "CAT"}, 0)
	s.Equal(single, results[0])
}

func (s *ServiceSuite) TestFindManyCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.FindMany(ctx, s.layout, s.board(), []model.Rack{model.NewRack("CAT")}, []string{"CAT"}, 0)
	s.ErrorIs(err, context.Canceled)
}
