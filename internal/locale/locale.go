package locale

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/scrabblesolver/internal/model"
)

//go:embed data/*.yaml
var embedded embed.FS

// Locale is one language variant: board layout, tile tables and dictionary rules
type Locale struct {
	Code       string
	Name       string
	RackSize   int          // Tiles held by a player (NCARDS)
	Alphabet   []rune       // Playable letters, sorted, without the wildcard
	Counts     map[rune]int // Tiles of each letter in the bag, wildcard included
	Layout     *model.Layout
	Scoring    model.ScoringConfig
	Dictionary DictionaryConfig
}

// DictionaryConfig describes how raw word lists are filtered for the locale
type DictionaryConfig struct {
	Paths            []string          // Candidate word list files, first existing wins
	RequireLowercase bool              // Drop words with uppercase letters (proper names)
	Substitutions    map[string]string // Applied before diacritics are stripped
	StripDiacritics  bool              // Remove any accent left after substitution
	ExtraWords       []string          // Always added after loading
	MinLength        int
	MaxLength        int
}

// fileLocale is the YAML shape of a locale definition
type fileLocale struct {
	Code          string         `yaml:"code"`
	Name          string         `yaml:"name"`
	RackSize      int            `yaml:"rack_size"`
	Layout        string         `yaml:"layout"`
	Counts        map[string]int `yaml:"counts"`
	Points        map[string]int `yaml:"points"`
	PlainBonus    map[int]int    `yaml:"plain_bonus"`
	WildcardBonus map[int]int    `yaml:"wildcard_bonus"`
	WordBonus     map[string]int `yaml:"word_bonus"`
	Dictionary    struct {
		Paths            []string          `yaml:"paths"`
		RequireLowercase bool              `yaml:"require_lowercase"`
		Substitutions    map[string]string `yaml:"substitutions"`
		StripDiacritics  bool              `yaml:"strip_diacritics"`
		ExtraWords       []string          `yaml:"extra_words"`
		MinLength        int               `yaml:"min_length"`
		MaxLength        int               `yaml:"max_length"`
	} `yaml:"dictionary"`
}

// Load decodes and validates a locale definition
func Load(r io.Reader) (*Locale, error) {
	var f fileLocale
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidLocale, err)
	}
	return f.build()
}

// LoadBytes is Load over an in-memory definition
func LoadBytes(data []byte) (*Locale, error) {
	return Load(bytes.NewReader(data))
}

func (f *fileLocale) build() (*Locale, error) {
	if f.Code == "" {
		return nil, fmt.Errorf("%w: code is required", model.ErrInvalidLocale)
	}
	if f.RackSize <= 0 {
		return nil, fmt.Errorf("%w: %s: rack_size must be positive", model.ErrInvalidLocale, f.Code)
	}

	layout, err := model.ParseLayout(f.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrInvalidLocale, f.Code, err)
	}

	points, err := runeTable(f.Points)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: points: %v", model.ErrInvalidLocale, f.Code, err)
	}
	counts, err := runeTable(f.Counts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: counts: %v", model.ErrInvalidLocale, f.Code, err)
	}

	alphabet := lo.Filter(lo.Keys(points), func(r rune, _ int) bool { return r != model.Wildcard })
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: %s: no letters", model.ErrInvalidLocale, f.Code)
	}
	for letter := range counts {
		if _, ok := points[letter]; !ok && letter != model.Wildcard {
			return nil, fmt.Errorf("%w: %s: letter %q has a count but no points", model.ErrInvalidLocale, f.Code, letter)
		}
	}

	wordBonus := make(map[string]int, len(f.WordBonus))
	for word, bonus := range f.WordBonus {
		wordBonus[strings.ToUpper(word)] = bonus
	}

	dict := DictionaryConfig{
		Paths:            f.Dictionary.Paths,
		RequireLowercase: f.Dictionary.RequireLowercase,
		Substitutions:    f.Dictionary.Substitutions,
		StripDiacritics:  f.Dictionary.StripDiacritics,
		ExtraWords:       lo.Map(f.Dictionary.ExtraWords, func(w string, _ int) string { return strings.ToUpper(w) }),
		MinLength:        f.Dictionary.MinLength,
		MaxLength:        f.Dictionary.MaxLength,
	}
	if dict.MinLength < 2 {
		dict.MinLength = 2
	}
	if dict.MaxLength <= 0 {
		dict.MaxLength = max(layout.Width(), layout.Height())
	}

	return &Locale{
		Code:     f.Code,
		Name:     f.Name,
		RackSize: f.RackSize,
		Alphabet: alphabet,
		Counts:   counts,
		Layout:   layout,
		Scoring: model.ScoringConfig{
			Points:        points,
			PlainBonus:    nonNil(f.PlainBonus),
			WildcardBonus: nonNil(f.WildcardBonus),
			WordBonus:     wordBonus,
		},
		Dictionary: dict,
	}, nil
}

// runeTable converts single-letter YAML keys into uppercase runes
func runeTable(in map[string]int) (map[rune]int, error) {
	out := make(map[rune]int, len(in))
	for key, value := range in {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("key %q is not a single letter", key)
		}
		if value < 0 {
			return nil, fmt.Errorf("key %q has negative value %d", key, value)
		}
		r, _ := utf8.DecodeRuneInString(strings.ToUpper(key))
		out[r] = value
	}
	return out, nil
}

func nonNil(m map[int]int) map[int]int {
	if m == nil {
		return map[int]int{}
	}
	return m
}

// HasLetter returns true if the letter belongs to the locale's alphabet
func (l *Locale) HasLetter(r rune) bool {
	_, ok := l.Scoring.Points[r]
	return ok && r != model.Wildcard
}

// CheckBoard returns model.ErrInvalidLetter if a tile on the board is not in
// the alphabet
func (l *Locale) CheckBoard(state *model.BoardState) error {
	for row := 0; row < state.Height(); row++ {
		for col := 0; col < state.Width(); col++ {
			pos := model.Position{Row: row, Col: col}
			if r := state.Get(pos); r != model.Empty && !l.HasLetter(r) {
				return fmt.Errorf("%w: %q at row %d col %d", model.ErrInvalidLetter, r, row, col)
			}
		}
	}
	return nil
}

// SearchPaths returns the word list candidates in lookup order. A relative
// path is tried in the working directory, then next to the executable.
func (d DictionaryConfig) SearchPaths() []string {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	out := make([]string, 0, 2*len(d.Paths))
	for _, p := range d.Paths {
		out = append(out, p)
		if !filepath.IsAbs(p) && exeDir != "" {
			out = append(out, filepath.Join(exeDir, p))
		}
	}
	return out
}

// Registry holds the locales selectable at startup
type Registry struct {
	locales map[string]*Locale
}

// NewRegistry creates a registry of the given locales
func NewRegistry(locales ...*Locale) *Registry {
	r := &Registry{locales: make(map[string]*Locale, len(locales))}
	for _, l := range locales {
		r.locales[l.Code] = l
	}
	return r
}

// Builtin loads every locale embedded in the binary
func Builtin() (*Registry, error) {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil, err
	}
	var locales []*Locale
	for _, entry := range entries {
		data, err := embedded.ReadFile(path.Join("data", entry.Name()))
		if err != nil {
			return nil, err
		}
		l, err := LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		locales = append(locales, l)
	}
	return NewRegistry(locales...), nil
}

// MustBuiltin is Builtin for callers that cannot recover from broken embedded data
func MustBuiltin() *Registry {
	r, err := Builtin()
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the locale with the given code
func (r *Registry) Get(code string) (*Locale, error) {
	l, ok := r.locales[strings.ToLower(code)]
	if !ok {
		return nil, model.ErrLocaleNotFound
	}
	return l, nil
}

// Codes returns the registered locale codes in sorted order
func (r *Registry) Codes() []string {
	codes := lo.Keys(r.locales)
	sort.Strings(codes)
	return codes
}

// List returns the registered locales sorted by code
func (r *Registry) List() []*Locale {
	return lo.Map(r.Codes(), func(code string, _ int) *Locale { return r.locales[code] })
}
