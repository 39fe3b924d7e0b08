package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabblesolver/internal/api/handler"
	"github.com/mcoot/scrabblesolver/internal/api/middleware"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
	"github.com/mcoot/scrabblesolver/internal/services/session"
	"github.com/mcoot/scrabblesolver/internal/services/solver"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	Locales           *locale.Registry
	DictionaryService dictionary.ServiceInterface
	Solver            solver.ServiceInterface
	SessionController session.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	localeHandler := handler.NewLocaleHandler(cfg.Locales, cfg.DictionaryService)
	solveHandler := handler.NewSolveHandler(cfg.Locales, cfg.Solver)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", localeHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/locales", localeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/locales/{code}", localeHandler.Get).Methods(http.MethodGet)

	// Stateless search
	api.HandleFunc("/solve", solveHandler.Solve).Methods(http.MethodPost)
	api.HandleFunc("/score", solveHandler.Score).Methods(http.MethodPost)

	// Assistant sessions
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/rack", sessionHandler.SetRack).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/cursor", sessionHandler.MoveCursor).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/type", sessionHandler.Type).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/cells/{row}/{col}", sessionHandler.ClearCell).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/wildcards/toggle", sessionHandler.ToggleWildcards).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/solve", sessionHandler.Solve).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/accept", sessionHandler.Accept).Methods(http.MethodPost)

	return r
}
