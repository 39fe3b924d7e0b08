package handler

import (
	"net/http"

	"github.com/mcoot/scrabblesolver/internal/api/request"
	"github.com/mcoot/scrabblesolver/internal/api/response"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/services/solver"
)

// SolveHandler handles stateless search and scoring endpoints
type SolveHandler struct {
	locales *locale.Registry
	solver  solver.ServiceInterface
}

// NewSolveHandler creates a new solve handler
func NewSolveHandler(locales *locale.Registry, solver solver.ServiceInterface) *SolveHandler {
	return &SolveHandler{
		locales: locales,
		solver:  solver,
	}
}

// parseBoard resolves the locale and decodes the board rows against its layout
func (h *SolveHandler) parseBoard(code string, rows []string) (*locale.Locale, *model.BoardState, error) {
	if code == "" {
		return nil, nil, NewInvalidRequestError("locale is required")
	}
	loc, err := h.locales.Get(code)
	if err != nil {
		return nil, nil, err
	}
	state, err := model.ParseBoardState(rows, loc.Layout.Width(), loc.Layout.Height())
	if err != nil {
		return nil, nil, err
	}
	if err := loc.CheckBoard(state); err != nil {
		return nil, nil, err
	}
	return loc, state, nil
}

// Solve handles POST /api/v1/solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Limit < 0 {
		WriteError(w, NewInvalidRequestError("limit must not be negative"))
		return
	}

	loc, state, err := h.parseBoard(req.Locale, req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}
	rack := model.NormalizeRack(req.Rack, loc.Alphabet, loc.RackSize)

	placements, err := h.solver.Solve(r.Context(), loc, state, rack, req.Limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.SolveResponse{
		Rack:       rack.String(),
		Placements: response.PlacementsFromModel(placements),
	})
}

// Score handles POST /api/v1/score
func (h *SolveHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	loc, state, err := h.parseBoard(req.Locale, req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}
	rack := model.NormalizeRack(req.Rack, loc.Alphabet, loc.RackSize)

	o := model.Horizontal
	if req.Vertical {
		o = model.Vertical
	}
	word := model.NewRack(req.Word).String()

	p, err := h.solver.Score(loc, state, rack, word, model.Position{Row: req.Row, Col: req.Col}, o)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PlacementFromModel(p))
}
