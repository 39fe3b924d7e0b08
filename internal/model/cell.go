package model

import "fmt"

// CellKind is the premium marking of a board cell
type CellKind uint8

const (
	CellSimple CellKind = iota
	CellStart
	CellDoubleLetter
	CellTripleLetter
	CellDoubleWord
	CellTripleWord
)

// Layout text codes, one character per cell
const (
	codeSimple       = '.'
	codeStart        = 'B'
	codeDoubleLetter = 'l'
	codeTripleLetter = 'L'
	codeDoubleWord   = 'w'
	codeTripleWord   = 'W'
)

// LetterMultiplier returns the factor applied to a letter placed on this cell
func (k CellKind) LetterMultiplier() int {
	switch k {
	case CellDoubleLetter:
		return 2
	case CellTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the factor applied to the whole word crossing this cell.
// The start cell doubles the opening word.
func (k CellKind) WordMultiplier() int {
	switch k {
	case CellStart, CellDoubleWord:
		return 2
	case CellTripleWord:
		return 3
	default:
		return 1
	}
}

func (k CellKind) String() string {
	switch k {
	case CellSimple:
		return "simple"
	case CellStart:
		return "start"
	case CellDoubleLetter:
		return "double_letter"
	case CellTripleLetter:
		return "triple_letter"
	case CellDoubleWord:
		return "double_word"
	case CellTripleWord:
		return "triple_word"
	default:
		return fmt.Sprintf("cell(%d)", uint8(k))
	}
}

// Code returns the layout text character for the kind
func (k CellKind) Code() rune {
	switch k {
	case CellStart:
		return codeStart
	case CellDoubleLetter:
		return codeDoubleLetter
	case CellTripleLetter:
		return codeTripleLetter
	case CellDoubleWord:
		return codeDoubleWord
	case CellTripleWord:
		return codeTripleWord
	default:
		return codeSimple
	}
}

// ParseCellKind converts a layout text character into a CellKind
func ParseCellKind(code rune) (CellKind, error) {
	switch code {
	case codeSimple, ' ':
		return CellSimple, nil
	case codeStart:
		return CellStart, nil
	case codeDoubleLetter:
		return CellDoubleLetter, nil
	case codeTripleLetter:
		return CellTripleLetter, nil
	case codeDoubleWord:
		return CellDoubleWord, nil
	case codeTripleWord:
		return CellTripleWord, nil
	default:
		return CellSimple, fmt.Errorf("%w: unknown cell code %q", ErrInvalidLayout, code)
	}
}
