package model

// Placement is a fully specified candidate move and its score
type Placement struct {
	Word        string
	Position    Position // Cell of the first letter
	Orientation Orientation
	Wildcards   []bool // One flag per letter of Word
	TilesUsed   int    // Tiles drawn from the rack
	Score       int
}

// Cells returns the positions covered by the word, in letter order
func (p Placement) Cells() []Position {
	n := len([]rune(p.Word))
	cells := make([]Position, n)
	for k := 0; k < n; k++ {
		cells[k] = p.Position.Advance(p.Orientation, k)
	}
	return cells
}

// UsesWildcard returns true if any letter of the word is a wildcard
func (p Placement) UsesWildcard() bool {
	for _, w := range p.Wildcards {
		if w {
			return true
		}
	}
	return false
}

// ScoringConfig holds the per-locale score tables
type ScoringConfig struct {
	Points        map[rune]int   // Letter -> point value
	PlainBonus    map[int]int    // Tiles drawn -> bonus, moves without wildcards
	WildcardBonus map[int]int    // Tiles drawn -> bonus, moves using a wildcard
	WordBonus     map[string]int // Whole word -> fixed bonus
}

// LetterPoints returns the point value of a letter, 0 if unknown
func (c *ScoringConfig) LetterPoints(letter rune) int {
	return c.Points[letter]
}

// CountBonus returns the bonus for drawing n tiles
func (c *ScoringConfig) CountBonus(n int, usedWildcard bool) int {
	if usedWildcard {
		return c.WildcardBonus[n]
	}
	return c.PlainBonus[n]
}
