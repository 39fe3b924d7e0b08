package model

import "time"

// SessionID uniquely identifies an assistant session
type SessionID string

// Session is the state owned by one presentation front end: the board as
// played so far, the tiles in hand, the editing cursor and the last search
type Session struct {
	ID            SessionID
	Locale        string
	State         *BoardState
	Rack          Rack
	Cursor        Position
	Orientation   Orientation // Direction the cursor advances when typing
	ShowWildcards bool        // Render wildcard tiles as '*' instead of their letter
	Results       []Placement // Ranked results of the last search
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSession creates a session with an empty board of the given layout
func NewSession(id SessionID, locale string, layout *Layout, now time.Time) *Session {
	return &Session{
		ID:            id,
		Locale:        locale,
		State:         NewBoardStateFor(layout),
		Rack:          Rack{},
		ShowWildcards: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
