package handler

import (
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/service"

	"github.com/rs/zerolog"
)

// TranslationHandler handles owner-triggered translation HTTP requests.
type TranslationHandler struct {
	service service.TranslationService
	logger  zerolog.Logger
}

// NewTranslationHandler creates a new translation handler.
func NewTranslationHandler(service service.TranslationService, logger zerolog.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		logger:  logger.With().Str("handler", "translation").Logger(),
	}
}

// Generate handles POST /api/menus/{id}/translations/{lang} requests. The
// first request for a pair calls the external service; later requests return
// the stored record.
func (h *TranslationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	language := r.PathValue("lang")

	record, err := h.service.Generate(r.Context(), actorFrom(r), menuID, language)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/menus/{id}/translations/{lang} requests,
// removing the stored record so the owner can regenerate it.
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	language := r.PathValue("lang")

	if err := h.service.Delete(r.Context(), actorFrom(r), menuID, language); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
