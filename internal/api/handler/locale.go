package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/scrabblesolver/internal/api/response"
	"github.com/mcoot/scrabblesolver/internal/locale"
	"github.com/mcoot/scrabblesolver/internal/services/dictionary"
)

// LocaleHandler handles locale listing and the health check
type LocaleHandler struct {
	locales    *locale.Registry
	dictionary dictionary.ServiceInterface
}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler(locales *locale.Registry, dictionary dictionary.ServiceInterface) *LocaleHandler {
	return &LocaleHandler{
		locales:    locales,
		dictionary: dictionary,
	}
}

// List handles GET /api/v1/locales
func (h *LocaleHandler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, lo.Map(h.locales.List(), func(l *locale.Locale, _ int) response.LocaleSummary {
		return response.LocaleSummaryFromModel(l)
	}))
}

// Get handles GET /api/v1/locales/{code}
func (h *LocaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	loc, err := h.locales.Get(mux.Vars(r)["code"])
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.LocaleFromModel(loc))
}

// Health handles GET /api/v1/health
func (h *LocaleHandler) Health(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int)
	for _, code := range h.locales.Codes() {
		counts[code] = h.dictionary.WordCount(code)
	}
	response.OK(w, response.HealthResponse{Status: "ok", Locales: counts})
}
