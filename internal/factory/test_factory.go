package factory

import (
	"time"

	"github.com/mcoot/scrabblesolver/internal/dependencies/mocks"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/storage/memory"
	"github.com/mcoot/scrabblesolver/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App on memory storage with mocked clock and ids
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(memory.New(), mockClock, mockRandom, locale.MustBuiltin(), true, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionaries loads the small test word lists for "en" and "it"
func (t *TestApp) LoadTestDictionaries() {
	en, _ := t.Locales.Get("en")
	t.DictionaryService.LoadWords(en, testutil.EnglishWords)
	it, _ := t.Locales.Get("it")
	t.DictionaryService.LoadWords(it, testutil.ItalianWords)
}
