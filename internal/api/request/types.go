package request

// SolveRequest is the request body for a stateless search
type SolveRequest struct {
	Locale string   `json:"locale"`
	Board  []string `json:"board"` // '.' empty, uppercase tile, lowercase wildcard tile
	Rack   string   `json:"rack"`
	Limit  int      `json:"limit,omitempty"`
}

// ScoreRequest is the request body for scoring one placement
type ScoreRequest struct {
	Locale   string   `json:"locale"`
	Board    []string `json:"board"`
	Rack     string   `json:"rack"`
	Word     string   `json:"word"`
	Row      int      `json:"row"`
	Col      int      `json:"col"`
	Vertical bool     `json:"vertical"`
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Locale string `json:"locale"`
}

// SetRackRequest is the request body for replacing the rack
type SetRackRequest struct {
	Rack string `json:"rack"`
}

// CursorRequest is the request body for moving the typing cursor
type CursorRequest struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Vertical bool `json:"vertical"`
}

// TypeRequest is the request body for typing letters at the cursor.
// "*X" places X with a wildcard tile.
type TypeRequest struct {
	Text string `json:"text"`
}

// SolveSessionRequest is the request body for searching a session
type SolveSessionRequest struct {
	Limit int `json:"limit,omitempty"`
}

// AcceptRequest is the request body for accepting a search result
type AcceptRequest struct {
	Index int `json:"index"`
}
