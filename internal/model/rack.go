package model

import (
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Wildcard is the rack symbol for a tile usable as any letter
const Wildcard rune = '*'

// Rack is the multiset of tiles a player holds
type Rack []rune

// NewRack builds a rack from a string of tiles, uppercasing letters
func NewRack(tiles string) Rack {
	return Rack([]rune(strings.ToUpper(tiles)))
}

// NormalizeRack uppercases the input, keeps only letters of the alphabet and
// wildcards, and truncates to size tiles (0 means unlimited)
func NormalizeRack(input string, alphabet []rune, size int) Rack {
	allowed := make(map[rune]struct{}, len(alphabet)+1)
	for _, r := range alphabet {
		allowed[r] = struct{}{}
	}
	allowed[Wildcard] = struct{}{}

	rack := lo.Filter([]rune(strings.ToUpper(input)), func(r rune, _ int) bool {
		_, ok := allowed[unicode.ToUpper(r)]
		return ok
	})
	if size > 0 && len(rack) > size {
		rack = rack[:size]
	}
	return Rack(rack)
}

// Len returns the number of tiles
func (r Rack) Len() int { return len(r) }

// IsEmpty returns true if the rack holds no tiles
func (r Rack) IsEmpty() bool { return len(r) == 0 }

// Counts returns a consumable tally of the tiles
func (r Rack) Counts() map[rune]int {
	counts := make(map[rune]int, len(r))
	for _, t := range r {
		counts[t]++
	}
	return counts
}

// Sorted returns the tiles in ascending order, leaving the rack untouched
func (r Rack) Sorted() Rack {
	sorted := make(Rack, len(r))
	copy(sorted, r)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

func (r Rack) String() string {
	return string(r)
}

// MarshalText encodes the rack as a plain string
func (r Rack) MarshalText() ([]byte, error) {
	return []byte(string(r)), nil
}

// UnmarshalText decodes the rack from a plain string
func (r *Rack) UnmarshalText(text []byte) error {
	*r = NewRack(string(text))
	return nil
}
