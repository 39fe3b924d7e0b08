package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrInvalidPlacement = errors.New("invalid placement")

	// Board errors
	ErrInvalidLayout   = errors.New("invalid board layout")
	ErrInvalidBoard    = errors.New("invalid board state")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidLetter   = errors.New("invalid letter")

	// Locale errors
	ErrLocaleNotFound = errors.New("locale not found")
	ErrInvalidLocale  = errors.New("invalid locale")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyRack       = errors.New("rack is empty")
	ErrNoResults       = errors.New("no search results")
	ErrResultIndex     = errors.New("result index out of range")

	// Cache errors
	ErrSolutionNotFound = errors.New("solution not cached")
)
