package factory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblesolver/internal/dependencies/mocks"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/solvecache"
	"github.com/mcoot/scrabblesolver/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.LoadTestDictionaries()
}

// Test: a whole assistant session from an empty board to an accepted move
func (s *IntegrationSuite) TestSessionFlow() {
	s.app.MockRandom.QueueString("SESSION1")

	// Step 1: Create an Italian session
	sess, err := s.app.SessionController.Create(s.ctx, "it")
	s.Require().NoError(err)
	s.Equal(model.SessionID("SESSION1"), sess.ID)
	s.Equal(17, sess.State.Width())

	// Step 2: Type the opening word across the start cell
	_, err = s.app.SessionController.MoveCursor(s.ctx, sess.ID, model.Position{Row: 8, Col: 6}, model.Horizontal)
	s.Require().NoError(err)
	sess, err = s.app.SessionController.Type(s.ctx, sess.ID, "casa")
	s.Require().NoError(err)
	s.Equal("......CASA.......", sess.State.Rows()[8])

	// Step 3: Enter the rack and search
	s.app.MockClock.Advance(time.Minute)
	sess, err = s.app.SessionController.SetRack(s.ctx, sess.ID, "cne")
	s.Require().NoError(err)
	s.Equal("CNE", sess.Rack.String())
	s.True(sess.UpdatedAt.After(sess.CreatedAt))

	sess, err = s.app.SessionController.Solve(s.ctx, sess.ID, 0)
	s.Require().NoError(err)
	s.Require().NotEmpty(sess.Results)
	words := make([]string, 0, len(sess.Results))
	for _, p := range sess.Results {
		words = append(words, p.Word)
	}
	s.Contains(words, "CANE")
	for i := 1; i < len(sess.Results); i++ {
		s.GreaterOrEqual(sess.Results[i-1].Score, sess.Results[i].Score)
	}

	// Step 4: Accept the best move
	best := sess.Results[0]
	sess, err = s.app.SessionController.Accept(s.ctx, sess.ID, 0)
	s.Require().NoError(err)
	for k, cell := range best.Cells() {
		s.Equal([]rune(best.Word)[k], sess.State.Get(cell))
	}
	s.True(sess.Rack.IsEmpty())
	s.Empty(sess.Results)

	// Step 5: The session survives a reload from storage
	stored, err := s.app.Storage.GetSession(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.State.Rows(), stored.State.Rows())
}

// Test: ranked results are cached under the search fingerprint
func (s *IntegrationSuite) TestSolveIsCached() {
	loc, err := s.app.Locales.Get("en")
	s.Require().NoError(err)
	state := model.NewBoardStateFor(loc.Layout)
	rack := model.NewRack("TAC")

	first, err := s.app.Solver.Solve(s.ctx, loc, state, rack, 0)
	s.Require().NoError(err)
	s.Require().NotEmpty(first)

	dict, err := s.app.DictionaryService.Get("en")
	s.Require().NoError(err)
	key := solvecache.Fingerprint("en", dict.Digest(), state, model.NewRack("CAT"))
	cached, err := s.app.Storage.GetSolution(s.ctx, key)
	s.Require().NoError(err)
	s.Equal(first, cached)

	limited, err := s.app.Solver.Solve(s.ctx, loc, state, model.NewRack("ACT"), 1)
	s.Require().NoError(err)
	s.Equal(first[:1], limited)
}

// Test: dictionaries load from a directory and are restored from storage
func (s *IntegrationSuite) TestLoadDictionaries() {
	dir := s.T().TempDir()
	content := strings.Join(testutil.ItalianWords, "\n") + "\n"
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "it.txt"), []byte(content), 0o644))

	app := newWithDependencies(s.app.Storage, mocks.NewMockClock(time.Now()), mocks.NewMockRandom(), s.app.Locales, true, testutil.NopLogger())
	s.Require().NoError(app.LoadDictionaries(s.ctx, dir))

	dict, err := app.DictionaryService.Get("it")
	s.Require().NoError(err)
	s.True(dict.Contains("CITTA"))
	s.True(dict.Contains("AN"), "extra words are added")
	s.False(dict.Contains("ROMA"), "capitalised entries are dropped")

	// A second app on the same storage does not need the file
	restored := newWithDependencies(s.app.Storage, mocks.NewMockClock(time.Now()), mocks.NewMockRandom(), s.app.Locales, true, testutil.NopLogger())
	s.Require().NoError(restored.LoadDictionaries(s.ctx, s.T().TempDir()))
	again, err := restored.DictionaryService.Get("it")
	s.Require().NoError(err)
	s.Equal(dict.Words(), again.Words())
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	if err == nil {
		t.Fatal("expected an error for an unknown storage type")
	}

	_, err = New(Config{StorageType: StorageTypeRedis})
	if err == nil {
		t.Fatal("expected an error without redis config")
	}
}

func TestNewWithoutCache(t *testing.T) {
	app, err := New(Config{DisableSolveCache: true})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = app.Close() }()
	if app.SolveCache != nil {
		t.Fatal("solve cache should be disabled")
	}
}
