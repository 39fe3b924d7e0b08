package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/scrabblesolver/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPlacement    = "INVALID_PLACEMENT"
	CodeInvalidBoard        = "INVALID_BOARD"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeLocaleNotFound      = "LOCALE_NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeEmptyRack           = "EMPTY_RACK"
	CodeNoResults           = "NO_RESULTS"
	CodeResultIndex         = "RESULT_INDEX"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidPlacement):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidPlacement, "Word cannot be placed there"}}
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, "Board does not match the locale layout"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter is not in the locale alphabet"}}
	case errors.Is(err, model.ErrLocaleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLocaleNotFound, "Locale not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "No dictionary loaded for this locale"}}
	case errors.Is(err, model.ErrEmptyRack):
		return &httpError{http.StatusConflict, APIError{CodeEmptyRack, "No letters in the rack"}}
	case errors.Is(err, model.ErrNoResults):
		return &httpError{http.StatusConflict, APIError{CodeNoResults, "No search results to accept"}}
	case errors.Is(err, model.ErrResultIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeResultIndex, "Result index out of range"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
