package dictionary

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/scrabblesolver/internal/locale"
)

// Dictionary is an immutable set of uppercase words kept in sorted order
type Dictionary struct {
	words  []string
	set    map[string]struct{}
	digest uint64
}

// New builds a dictionary from already normalised words, dropping duplicates
func New(words []string) *Dictionary {
	set := make(map[string]struct{}, len(words))
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := set[w]; dup {
			continue
		}
		set[w] = struct{}{}
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	h := xxhash.New()
	for _, w := range sorted {
		_, _ = h.WriteString(w)
		_, _ = h.Write([]byte{'\n'})
	}
	return &Dictionary{words: sorted, set: set, digest: h.Sum64()}
}

// Digest identifies the word content, equal for equal word sets
func (d *Dictionary) Digest() uint64 {
	return d.digest
}

// Words returns the words in lexicographic order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of words
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains checks if a word exists in the dictionary
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[strings.ToUpper(word)]
	return ok
}

// stripMarks removes combining diacritics after canonical decomposition
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts a raw word list entry into dictionary form for the locale.
// It returns false if the entry must be dropped.
func Normalize(raw string, loc *locale.Locale) (string, bool) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", false
	}
	cfg := loc.Dictionary
	if cfg.RequireLowercase && strings.ToLower(word) != word {
		return "", false
	}
	for from, to := range cfg.Substitutions {
		word = strings.ReplaceAll(word, from, to)
	}
	if cfg.StripDiacritics {
		stripped, _, err := transform.String(stripMarks, word)
		if err != nil {
			return "", false
		}
		word = stripped
	}
	word = strings.ToUpper(word)

	n := utf8.RuneCountInString(word)
	if n < cfg.MinLength || n > cfg.MaxLength {
		return "", false
	}
	for _, r := range word {
		if !loc.HasLetter(r) {
			return "", false
		}
	}
	return word, true
}

// Build normalises raw entries and adds the locale's extra words
func Build(raw []string, loc *locale.Locale) *Dictionary {
	words := make([]string, 0, len(raw)+len(loc.Dictionary.ExtraWords))
	for _, entry := range raw {
		if w, ok := Normalize(entry, loc); ok {
			words = append(words, w)
		}
	}
	words = append(words, loc.Dictionary.ExtraWords...)
	return New(words)
}
