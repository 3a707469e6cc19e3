package handler

import (
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/service"

	"github.com/rs/zerolog"
)

// PublicHandler serves the unauthenticated public menu endpoint.
type PublicHandler struct {
	service service.PublicMenuService
	logger  zerolog.Logger
}

// NewPublicHandler creates a new public menu handler.
func NewPublicHandler(service service.PublicMenuService, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		service: service,
		logger:  logger.With().Str("handler", "public").Logger(),
	}
}

// Resolve handles GET /public/menus/{slug} requests. An optional lang query
// parameter applies a stored translation. The response is a generic 404 for
// unknown, inactive and private slugs alike.
func (h *PublicHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusNotFound, "not found", h.logger)
		return
	}

	language := r.URL.Query().Get("lang")

	menu, err := h.service.Resolve(r.Context(), slug, language)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}
