package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabblesolver/internal/api/request"
	"github.com/mcoot/scrabblesolver/internal/api/response"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/session"
)

// SessionHandler handles assistant session endpoints
type SessionHandler struct {
	controller session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller session.ControllerInterface) *SessionHandler {
	return &SessionHandler{
		controller: controller,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// respond writes the session or the error
func respond(w http.ResponseWriter, status int, sess *model.Session, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.SessionFromModel(sess))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Locale == "" {
		WriteError(w, NewInvalidRequestError("locale is required"))
		return
	}

	sess, err := h.controller.Create(r.Context(), req.Locale)
	respond(w, http.StatusCreated, sess, err)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.controller.Get(r.Context(), sessionID(r))
	respond(w, http.StatusOK, sess, err)
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Delete(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// SetRack handles PUT /api/v1/sessions/{id}/rack
func (h *SessionHandler) SetRack(w http.ResponseWriter, r *http.Request) {
	var req request.SetRackRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.controller.SetRack(r.Context(), sessionID(r), req.Rack)
	respond(w, http.StatusOK, sess, err)
}

// MoveCursor handles PUT /api/v1/sessions/{id}/cursor
func (h *SessionHandler) MoveCursor(w http.ResponseWriter, r *http.Request) {
	var req request.CursorRequest
	if !decode(w, r, &req) {
		return
	}
	o := model.Horizontal
	if req.Vertical {
		o = model.Vertical
	}
	sess, err := h.controller.MoveCursor(r.Context(), sessionID(r), model.Position{Row: req.Row, Col: req.Col}, o)
	respond(w, http.StatusOK, sess, err)
}

// Type handles POST /api/v1/sessions/{id}/type
func (h *SessionHandler) Type(w http.ResponseWriter, r *http.Request) {
	var req request.TypeRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		WriteError(w, NewInvalidRequestError("text is required"))
		return
	}
	sess, err := h.controller.Type(r.Context(), sessionID(r), req.Text)
	respond(w, http.StatusOK, sess, err)
}

// ClearCell handles DELETE /api/v1/sessions/{id}/cells/{row}/{col}
func (h *SessionHandler) ClearCell(w http.ResponseWriter, r *http.Request) {
	row, ok := intVar(w, r, "row")
	if !ok {
		return
	}
	col, ok := intVar(w, r, "col")
	if !ok {
		return
	}
	sess, err := h.controller.ClearCell(r.Context(), sessionID(r), model.Position{Row: row, Col: col})
	respond(w, http.StatusOK, sess, err)
}

// ToggleWildcards handles POST /api/v1/sessions/{id}/wildcards/toggle
func (h *SessionHandler) ToggleWildcards(w http.ResponseWriter, r *http.Request) {
	sess, err := h.controller.ToggleWildcardDisplay(r.Context(), sessionID(r))
	respond(w, http.StatusOK, sess, err)
}

// Solve handles POST /api/v1/sessions/{id}/solve
func (h *SessionHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveSessionRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	if req.Limit < 0 {
		WriteError(w, NewInvalidRequestError("limit must not be negative"))
		return
	}
	sess, err := h.controller.Solve(r.Context(), sessionID(r), req.Limit)
	respond(w, http.StatusOK, sess, err)
}

// Accept handles POST /api/v1/sessions/{id}/accept
func (h *SessionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req request.AcceptRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.controller.Accept(r.Context(), sessionID(r), req.Index)
	respond(w, http.StatusOK, sess, err)
}
