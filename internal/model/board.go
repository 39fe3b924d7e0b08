package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Orientation is the direction a word is laid out in
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Step returns the row and column delta between consecutive letters
func (o Orientation) Step() (dRow, dCol int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Toggle returns the other orientation
func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Advance returns the position n cells further along the orientation
func (p Position) Advance(o Orientation, n int) Position {
	dr, dc := o.Step()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Layout is the immutable premium grid of a board
type Layout struct {
	width  int
	height int
	cells  [][]CellKind // Row-major: cells[row][col]
	start  *Position
}

// NewLayout builds a layout from rows of cell kinds.
// All rows must have the same, non-zero length.
func NewLayout(rows [][]CellKind) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}
	width := len(rows[0])
	l := &Layout{
		width:  width,
		height: len(rows),
		cells:  make([][]CellKind, len(rows)),
	}
	for row, kinds := range rows {
		if len(kinds) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, row, len(kinds), width)
		}
		l.cells[row] = make([]CellKind, width)
		copy(l.cells[row], kinds)
		for col, k := range kinds {
			if k != CellStart {
				continue
			}
			if l.start != nil {
				return nil, fmt.Errorf("%w: more than one start cell", ErrInvalidLayout)
			}
			l.start = &Position{Row: row, Col: col}
		}
	}
	return l, nil
}

// ParseLayout decodes a layout from its text form, one line per row.
// Simple cells are written '.' or ' '. Trailing newlines are ignored.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	rows := make([][]CellKind, len(lines))
	for i, line := range lines {
		for _, code := range line {
			k, err := ParseCellKind(code)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows[i] = append(rows[i], k)
		}
	}
	return NewLayout(rows)
}

// MustParseLayout is ParseLayout for static data, panicking on error
func MustParseLayout(text string) *Layout {
	l, err := ParseLayout(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Width returns the number of columns
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows
func (l *Layout) Height() int { return l.height }

// InBounds returns true if the position is on the board
func (l *Layout) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < l.height && pos.Col >= 0 && pos.Col < l.width
}

// Kind returns the cell kind at the given position, CellSimple when out of bounds
func (l *Layout) Kind(pos Position) CellKind {
	if !l.InBounds(pos) {
		return CellSimple
	}
	return l.cells[pos.Row][pos.Col]
}

// Start returns the opening cell, if the layout has one
func (l *Layout) Start() (Position, bool) {
	if l.start == nil {
		return Position{}, false
	}
	return *l.start, true
}

// Len returns the number of cells from the edge to the far edge along the orientation
func (l *Layout) Len(o Orientation) int {
	if o == Vertical {
		return l.height
	}
	return l.width
}

// String renders the layout in its text form
func (l *Layout) String() string {
	var sb strings.Builder
	for _, row := range l.cells {
		for _, k := range row {
			sb.WriteRune(k.Code())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Empty is the letter value of an unoccupied cell
const Empty rune = 0

// BoardState holds the letters placed so far.
// Wildcard[row][col] is only meaningful where Letters[row][col] is not Empty.
type BoardState struct {
	Letters  [][]rune
	Wildcard [][]bool
}

// NewBoardState creates an empty state for a board of the given dimensions
func NewBoardState(width, height int) *BoardState {
	s := &BoardState{
		Letters:  make([][]rune, height),
		Wildcard: make([][]bool, height),
	}
	for i := range s.Letters {
		s.Letters[i] = make([]rune, width)
		s.Wildcard[i] = make([]bool, width)
	}
	return s
}

// NewBoardStateFor creates an empty state matching a layout
func NewBoardStateFor(l *Layout) *BoardState {
	return NewBoardState(l.Width(), l.Height())
}

// ParseBoardState decodes rows of text: '.' or ' ' is empty, an uppercase
// letter is a regular tile, a lowercase letter a tile placed as a wildcard.
// Short rows are padded with empty cells; longer rows or extra rows are rejected.
func ParseBoardState(rows []string, width, height int) (*BoardState, error) {
	if len(rows) > height {
		return nil, fmt.Errorf("%w: %d rows, board has %d", ErrInvalidBoard, len(rows), height)
	}
	s := NewBoardState(width, height)
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) > width {
			return nil, fmt.Errorf("%w: row %d has %d cells, board has %d", ErrInvalidBoard, row, len(runes), width)
		}
		for col, r := range runes {
			switch {
			case r == '.' || r == ' ':
				continue
			case unicode.IsUpper(r):
				s.Letters[row][col] = r
			case unicode.IsLower(r):
				s.Letters[row][col] = unicode.ToUpper(r)
				s.Wildcard[row][col] = true
			default:
				return nil, fmt.Errorf("%w: row %d col %d: unexpected %q", ErrInvalidBoard, row, col, r)
			}
		}
	}
	return s, nil
}

// Width returns the number of columns
func (s *BoardState) Width() int {
	if len(s.Letters) == 0 {
		return 0
	}
	return len(s.Letters[0])
}

// Height returns the number of rows
func (s *BoardState) Height() int {
	return len(s.Letters)
}

// InBounds returns true if the position is covered by the state grid
func (s *BoardState) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < s.Height() && pos.Col >= 0 && pos.Col < s.Width()
}

// Get returns the letter at the given position, or Empty
func (s *BoardState) Get(pos Position) rune {
	if !s.InBounds(pos) {
		return Empty
	}
	return s.Letters[pos.Row][pos.Col]
}

// IsEmpty returns true if no letter has been placed at the position
func (s *BoardState) IsEmpty(pos Position) bool {
	return s.Get(pos) == Empty
}

// IsWildcard returns true if the letter at the position was placed with a wildcard tile
func (s *BoardState) IsWildcard(pos Position) bool {
	if !s.InBounds(pos) {
		return false
	}
	return s.Letters[pos.Row][pos.Col] != Empty && s.Wildcard[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (s *BoardState) Set(pos Position, letter rune, wildcard bool) {
	if s.InBounds(pos) {
		s.Letters[pos.Row][pos.Col] = letter
		s.Wildcard[pos.Row][pos.Col] = wildcard
	}
}

// Clear empties the given position
func (s *BoardState) Clear(pos Position) {
	s.Set(pos, Empty, false)
}

// Apply writes a placement's letters and wildcard flags into the state
func (s *BoardState) Apply(p Placement) {
	for k, letter := range []rune(p.Word) {
		pos := p.Position.Advance(p.Orientation, k)
		wildcard := k < len(p.Wildcards) && p.Wildcards[k]
		s.Set(pos, letter, wildcard)
	}
}

// Clone returns an independent copy of the state
func (s *BoardState) Clone() *BoardState {
	c := NewBoardState(s.Width(), s.Height())
	for i := range s.Letters {
		copy(c.Letters[i], s.Letters[i])
		copy(c.Wildcard[i], s.Wildcard[i])
	}
	return c
}

// Count returns the number of occupied cells
func (s *BoardState) Count() int {
	count := 0
	for _, row := range s.Letters {
		for _, r := range row {
			if r != Empty {
				count++
			}
		}
	}
	return count
}

// Rows renders the state in its text form (see ParseBoardState)
func (s *BoardState) Rows() []string {
	rows := make([]string, s.Height())
	for i, letters := range s.Letters {
		var sb strings.Builder
		for j, r := range letters {
			switch {
			case r == Empty:
				sb.WriteByte('.')
			case s.Wildcard[i][j]:
				sb.WriteRune(unicode.ToLower(r))
			default:
				sb.WriteRune(r)
			}
		}
		rows[i] = sb.String()
	}
	return rows
}

// MarshalJSON encodes the state as its text rows
func (s BoardState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Rows())
}

// UnmarshalJSON decodes the state from its text rows
func (s *BoardState) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	parsed, err := ParseBoardState(rows, width, len(rows))
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
