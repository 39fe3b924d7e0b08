package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
	"github.com/mcoot/scrabblesolver/internal/services/solvecache"
	"github.com/mcoot/scrabblesolver/internal/storage/memory"
	"github.com/mcoot/scrabblesolver/internal/testutil"
)

// countingCache records calls made to the real cache
type countingCache struct {
	solvecache.ServiceInterface
	gets, puts, hits int
}

func (c *countingCache) Get(ctx context.Context, key string) ([]model.Placement, error) {
	c.gets++
	ps, err := c.ServiceInterface.Get(ctx, key)
	if err == nil {
		c.hits++
	}
	return ps, err
}

func (c *countingCache) Put(ctx context.Context, key string, ps []model.Placement) error {
	c.puts++
	return c.ServiceInterface.Put(ctx, key, ps)
}

type ServiceSuite struct {
	suite.Suite
	en      *locale.Locale
	it      *locale.Locale
	cache   *countingCache
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	registry := locale.MustBuiltin()
	s.en, _ = registry.Get("en")
	s.it, _ = registry.Get("it")

	store := memory.New()
	dicts := dictionary.NewService(store, testutil.NopLogger())
	dicts.LoadWords(s.en, testutil.EnglishWords)

	s.cache = &countingCache{ServiceInterface: solvecache.New(store, testutil.NopLogger())}
	s.service = New(dicts, s.cache, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestSolveRanksAndCaches() {
	state := model.NewBoardStateFor(s.en.Layout)
	rack := model.NewRack("CATS")

	first, err := s.service.Solve(s.ctx, s.en, state, rack, 0)
	s.Require().NoError(err)
	s.Require().NotEmpty(first)
	for i := 1; i < len(first); i++ {
		s.GreaterOrEqual(first[i-1].Score, first[i].Score)
	}
	s.Equal(1, s.cache.puts)
	s.Equal(0, s.cache.hits)

	// Same tiles in another order hit the cache
	second, err := s.service.Solve(s.ctx, s.en, state, model.NewRack("STAC"), 0)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(1, s.cache.hits)
	s.Equal(1, s.cache.puts)
}

func (s *ServiceSuite) TestSolveLimit() {
	state := model.NewBoardStateFor(s.en.Layout)

	all, err := s.service.Solve(s.ctx, s.en, state, model.NewRack("CATS"), 0)
	s.Require().NoError(err)
	s.Require().Greater(len(all), 3)

	top, err := s.service.Solve(s.ctx, s.en, state, model.NewRack("CATS"), 3)
	s.Require().NoError(err)
	s.Equal(all[:3], top)
}

func (s *ServiceSuite) TestSolveWithoutCache() {
	dicts := dictionary.NewService(memory.New(), testutil.NopLogger())
	dicts.LoadWords(s.en, []string{"cat"})
	svc := New(dicts, nil, testutil.NopLogger())

	ranked, err := svc.Solve(s.ctx, s.en, model.NewBoardStateFor(s.en.Layout), model.NewRack("TAC"), 0)
	s.Require().NoError(err)
	s.Require().Len(ranked, 1)
	s.Equal("CAT", ranked[0].Word)
}

func (s *ServiceSuite) TestSolveRejectsMismatchedBoard() {
	_, err := s.service.Solve(s.ctx, s.en, model.NewBoardState(3, 3), model.NewRack("CAT"), 0)
	s.ErrorIs(err, model.ErrInvalidBoard)
}

func (s *ServiceSuite) TestSolveWithoutDictionary() {
	_, err := s.service.Solve(s.ctx, s.it, model.NewBoardStateFor(s.it.Layout), model.NewRack("CASA"), 0)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestSolveMany() {
	state := model.NewBoardStateFor(s.en.Layout)
	racks := []model.Rack{model.NewRack("CAT"), model.NewRack("SEAT")}

	results, err := s.service.SolveMany(s.ctx, s.en, state, racks, 5)
	s.Require().NoError(err)
	s.Require().Len(results, 2)

	for i, rack := range racks {
		single, err := s.service.Solve(s.ctx, s.en, state, rack, 5)
		s.Require().NoError(err)
		s.Equal(single, results[i])
	}
}

func (s *ServiceSuite) TestScore() {
	state := model.NewBoardStateFor(s.en.Layout)

	p, err := s.service.Score(s.en, state, model.NewRack("CAT"), "CAT", model.Position{Row: 7, Col: 6}, model.Horizontal)
	s.Require().NoError(err)
	s.Equal(10, p.Score)

	_, err = s.service.Score(s.en, state, model.NewRack("CA"), "CAT", model.Position{Row: 7, Col: 6}, model.Horizontal)
	s.ErrorIs(err, model.ErrInvalidPlacement)

	_, err = s.service.Score(s.en, model.NewBoardState(2, 2), model.NewRack("CAT"), "CAT", model.Position{}, model.Horizontal)
	s.ErrorIs(err, model.ErrInvalidBoard)
}
