package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scrabblesolver/internal/api/apierr"
	"github.com/mcoot/scrabblesolver/internal/middleware"
)

// Recovery creates panic recovery middleware answering with a JSON error body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
