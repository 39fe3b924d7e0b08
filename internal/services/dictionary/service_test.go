package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/storage/memory"
	"github.com/mcoot/scrabblesolver/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	it      *locale.Locale
	en      *locale.Locale
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = NewService(s.storage, testutil.NopLogger())
	s.ctx = context.Background()

	registry := locale.MustBuiltin()
	var err error
	s.it, err = registry.Get("it")
	s.Require().NoError(err)
	s.en, err = registry.Get("en")
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded("it"))
	s.Equal(0, s.service.WordCount("it"))

	_, err := s.service.Get("it")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWordsNormalisesItalian() {
	dict := s.service.LoadWords(s.it, testutil.ItalianWords)

	s.True(s.service.IsLoaded("it"))
	s.True(dict.Contains("citta"), "accents are replaced")
	s.True(dict.Contains("PERCHE"))
	s.True(dict.Contains("PIU"))
	s.True(dict.Contains("TE"))
	s.True(dict.Contains("AN"), "extra words are added")
	s.False(dict.Contains("ROMA"), "capitalised entries are dropped")
	s.False(dict.Contains("X"), "single letters are dropped")
}

func (s *ServiceSuite) TestDiacriticsFollowTheLocale() {
	it := s.service.LoadWords(s.it, []string{"perché", "façade", "naïve"})
	s.Equal([]string{"AN", "PERCHE"}, it.Words(), "only substituted accents are accepted")

	en := s.service.LoadWords(s.en, []string{"façade", "naïve"})
	s.Equal([]string{"FACADE", "NAIVE"}, en.Words())
}

func (s *ServiceSuite) TestWordsAreSortedAndUnique() {
	dict := s.service.LoadWords(s.en, []string{"tea", "ant", "cat", "ant", "  bat  ", ""})

	s.Equal([]string{"ANT", "BAT", "CAT", "TEA"}, dict.Words())
	s.Equal(4, s.service.WordCount("en"))
}

func (s *ServiceSuite) TestOutsideAlphabetIsDropped() {
	dict := s.service.LoadWords(s.it, []string{"jazz", "wow", "casa"})
	s.Equal([]string{"AN", "CASA"}, dict.Words())
}

func (s *ServiceSuite) TestLengthLimits() {
	long := strings.Repeat("a", 16)
	dict := s.service.LoadWords(s.en, []string{"at", long, "cat"})
	s.Equal([]string{"AT", "CAT"}, dict.Words())
}

func (s *ServiceSuite) TestDigestDependsOnContentOnly() {
	a := New([]string{"CAT", "ACT"})
	b := New([]string{"ACT", "CAT", "CAT"})
	c := New([]string{"ACT", "TAC"})

	s.Equal(a.Digest(), b.Digest())
	s.NotEqual(a.Digest(), c.Digest())
}

func (s *ServiceSuite) TestLoadFromReaderSavesToStorage() {
	err := s.service.LoadFromReader(s.ctx, s.en, strings.NewReader("cat\ndog\nDog\ncat's\n"))
	s.Require().NoError(err)

	words, err := s.storage.GetDictionaryWords(s.ctx, "en")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CAT", "DOG"}, words)

	// A fresh service restores the same words from storage
	restored := NewService(s.storage, testutil.NopLogger())
	s.Require().NoError(restored.LoadFromStorage(s.ctx, s.en))
	dict, err := restored.Get("en")
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG"}, dict.Words())
}

func (s *ServiceSuite) TestLoadFromStorageMissing() {
	err := s.service.LoadFromStorage(s.ctx, s.en)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFileUsesFirstExisting() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "en.txt")
	s.Require().NoError(os.WriteFile(path, []byte("cat\ntea\n"), 0o600))

	err := s.service.LoadFromFile(s.ctx, s.en, filepath.Join(dir, "missing.txt"), path)
	s.Require().NoError(err)
	s.Equal(2, s.service.WordCount("en"))
}

func (s *ServiceSuite) TestLoadFromFileNoneFound() {
	err := s.service.LoadFromFile(s.ctx, s.en, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLocalesAreIndependent() {
	s.service.LoadWords(s.en, []string{"cat"})
	s.True(s.service.IsLoaded("en"))
	s.False(s.service.IsLoaded("it"))
}
