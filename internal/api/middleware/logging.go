package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabblesolver/internal/middleware"
)

// Logging creates request logging middleware keyed by the matched route template
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger, routeTemplate)
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tpl
}
